package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tsnthiago/viewstats/internal/catalog"
	"github.com/tsnthiago/viewstats/internal/transcript"
)

// WatchPage carries everything the watch view renders. Query is the search
// term that led here; transcript lines matching it are highlighted.
type WatchPage struct {
	Video catalog.Video
	Query string
}

// RenderWatch renders the player, metadata, and the synchronized transcript
// column.
func RenderWatch(p WatchPage) string {
	v := p.Video

	var b strings.Builder
	OpenPage(&b, v.Title, p.Query)

	b.WriteString(`<div class="watch">`)

	b.WriteString(`<div class="watch-main">`)
	b.WriteString(`<div class="player">`)
	fmt.Fprintf(&b, `<video id="player" controls playsinline poster="%s">`, EscapeAttr(v.Thumbnail))
	if v.VideoURL != "" {
		fmt.Fprintf(&b, `<source src="%s" type="video/mp4">`, EscapeAttr(v.VideoURL))
	}
	b.WriteString(`Your browser does not support HTML5 video.</video></div>`)

	b.WriteString(`<h1 class="watch-title">` + Escape(v.Title) + `</h1>`)

	var meta []string
	if v.ViewCount > 0 {
		meta = append(meta, FormatCount(v.ViewCount)+" views")
	}
	if v.UploadDate != "" {
		meta = append(meta, v.UploadDate)
	}
	if v.Duration != "" {
		meta = append(meta, v.Duration)
	}
	if len(meta) > 0 {
		b.WriteString(`<div class="watch-meta">` + Escape(strings.Join(meta, " · ")) + `</div>`)
	}

	if v.Channel.Name != "" {
		b.WriteString(`<div class="watch-channel">`)
		b.WriteString(`<span class="channel-name">` + Escape(v.Channel.Name) + `</span>`)
		if v.Channel.Subscribers > 0 {
			b.WriteString(`<span class="channel-subs">` + Escape(FormatCount(v.Channel.Subscribers)) + ` subscribers</span>`)
		}
		b.WriteString(`</div>`)
	}

	if len(v.Topics) > 0 {
		b.WriteString(`<div class="topic-chips">`)
		for _, t := range v.Topics {
			fmt.Fprintf(&b, `<a class="chip" href="/search?topic=%s">%s</a>`, url.QueryEscape(t), Escape(chipLabel(t)))
		}
		b.WriteString(`</div>`)
	}

	if v.Description != "" {
		b.WriteString(`<div class="watch-desc">` + Escape(v.Description) + `</div>`)
	}
	b.WriteString(`</div>`)

	renderTranscript(&b, v.Transcript, p.Query)

	b.WriteString(`</div>`)
	appendTranscriptScript(&b)
	ClosePage(&b)
	return b.String()
}

// chipLabel shows only the leaf name of a topic path.
func chipLabel(topicID string) string {
	parts := strings.Split(topicID, " > ")
	return parts[len(parts)-1]
}

func renderTranscript(b *strings.Builder, items []transcript.Item, query string) {
	b.WriteString(`<aside class="transcript">`)
	b.WriteString(`<h2 class="transcript-title">Transcript</h2>`)
	if len(items) == 0 {
		b.WriteString(`<p class="transcript-empty">No transcript available for this video.</p></aside>`)
		return
	}
	b.WriteString(`<div class="transcript-scroll" id="transcript">`)
	for _, it := range items {
		fmt.Fprintf(b, `<div class="seg" data-start="%g" data-end="%g">`, it.Start, it.End)
		fmt.Fprintf(b, `<span class="seg-time">%s</span>`, formatTimestamp(it.Start))
		b.WriteString(`<span class="seg-text">` + transcript.Highlight(it.Text, query) + `</span>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></aside>`)
}

func formatTimestamp(seconds float64) string {
	s := int(seconds)
	h := s / 3600
	m := (s % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s%60)
	}
	return fmt.Sprintf("%d:%02d", m, s%60)
}

// appendTranscriptScript keeps the transcript in lockstep with playback:
// timeupdate highlights the active row and scrolls it into view, clicking a
// row seeks the player.
func appendTranscriptScript(b *strings.Builder) {
	b.WriteString(`<script>
(function(){
 var player = document.getElementById('player');
 var pane = document.getElementById('transcript');
 if(!player || !pane){return;}
 var rows = pane.getElementsByClassName('seg');
 var active = null;

 function findRow(t){
  var lo = 0, hi = rows.length - 1;
  while(lo <= hi){
   var mid = (lo + hi) >> 1;
   var row = rows[mid];
   var start = parseFloat(row.getAttribute('data-start'));
   var end = parseFloat(row.getAttribute('data-end'));
   if(t < start){ hi = mid - 1; }
   else if(t >= end){ lo = mid + 1; }
   else { return row; }
  }
  return null;
 }

 player.addEventListener('timeupdate', function(){
  var row = findRow(player.currentTime);
  if(row === active){ return; }
  if(active){ active.className = 'seg'; }
  active = row;
  if(active){
   active.className = 'seg on';
   var top = active.offsetTop - pane.offsetTop;
   var want = top - pane.clientHeight / 2 + active.clientHeight / 2;
   pane.scrollTop = want < 0 ? 0 : want;
  }
 });

 pane.addEventListener('click', function(ev){
  var node = ev.target;
  while(node && node !== pane && (!node.className || node.className.indexOf('seg') !== 0)){
   node = node.parentNode;
  }
  if(!node || node === pane){ return; }
  var start = parseFloat(node.getAttribute('data-start'));
  if(isNaN(start)){ return; }
  player.currentTime = start;
  player.play();
 });
})();
</script>
`)
}
