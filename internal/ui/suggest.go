package ui

import "strings"

// AppendSuggestionScript injects the suggestion dropdown script. Debounce
// quiet window and minimum length mirror the server-side debouncer, and a
// request generation counter keeps stale responses from painting over
// newer ones.
func AppendSuggestionScript(b *strings.Builder) {
	b.WriteString(`<script>
(function(){
 var input = document.getElementById('search-input');
 var panel = document.getElementById('suggestion-panel');
 var form = document.getElementById('search-form');
 if(!input || !panel || !form){return;}
 var timer = null;
 var gen = 0;
 var items = [];
 var selected = -1;

 function escapeHTML(s){
  return String(s).replace(/&/g,'&amp;').replace(/</g,'&lt;').replace(/>/g,'&gt;').replace(/"/g,'&quot;');
 }

 function close(){
  panel.innerHTML = '';
  panel.style.display = 'none';
  items = [];
  selected = -1;
 }

 function render(){
  if(!items.length){ close(); return; }
  var html = '';
  for(var i=0;i<items.length;i++){
   var it = items[i];
   var cls = 'sug sug-' + it.type + (i === selected ? ' on' : '');
   html += '<div class="' + cls + '" data-i="' + i + '">';
   html += '<span class="sug-kind">' + escapeHTML(it.type) + '</span>';
   html += '<span class="sug-text">' + escapeHTML(it.text) + '</span>';
   if(it.count){ html += '<span class="sug-count">' + it.count + '</span>'; }
   html += '</div>';
  }
  panel.innerHTML = html;
  panel.style.display = 'block';
 }

 function fetchSuggestions(q){
  var mine = ++gen;
  var xhr = new XMLHttpRequest();
  xhr.onreadystatechange = function(){
   if(xhr.readyState !== 4){ return; }
   if(mine !== gen){ return; }
   if(xhr.status !== 200){ close(); return; }
   var payload;
   try{ payload = JSON.parse(xhr.responseText); }catch(e){ close(); return; }
   items = (payload && payload.suggestions) || [];
   selected = -1;
   render();
  };
  xhr.open('GET','/api/suggest?q=' + encodeURIComponent(q), true);
  try{ xhr.send(null); }catch(e){ close(); }
 }

 input.addEventListener('input', function(){
  gen++;
  if(timer){ clearTimeout(timer); timer = null; }
  var q = input.value.replace(/^\s+|\s+$/g,'');
  if(q.length < 2){ close(); return; }
  timer = setTimeout(function(){ fetchSuggestions(q); }, 300);
 });

 input.addEventListener('keydown', function(ev){
  if(ev.key === 'ArrowDown'){
   if(items.length){ selected = Math.min(selected + 1, items.length - 1); render(); ev.preventDefault(); }
  }else if(ev.key === 'ArrowUp'){
   if(items.length){ selected = Math.max(selected - 1, -1); render(); ev.preventDefault(); }
  }else if(ev.key === 'Escape'){
   close();
  }else if(ev.key === 'Enter'){
   if(selected >= 0 && selected < items.length){
    input.value = items[selected].text;
   }
   close();
  }
 });

 panel.addEventListener('mousedown', function(ev){
  var node = ev.target;
  while(node && node !== panel && !node.getAttribute('data-i')){ node = node.parentNode; }
  if(!node || node === panel){ return; }
  var i = parseInt(node.getAttribute('data-i'), 10);
  if(i >= 0 && i < items.length){
   input.value = items[i].text;
   close();
   form.submit();
  }
 });

 document.addEventListener('click', function(ev){
  if(ev.target !== input){ close(); }
 });
})();
</script>
`)
}
