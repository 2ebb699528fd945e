package ui

// RenderStyle returns the inline CSS shared by every page.
func RenderStyle() string {
	return `
body{font-family:Arial,Helvetica,sans-serif;font-size:14px;line-height:1.5;margin:0;background:#f7f7f8;color:#161616;}
a{color:#0f62fe;text-decoration:none;}
a:hover{text-decoration:underline;}
header,nav,section,article,footer,main,aside{display:block;}
.head{background:#fff;border-bottom:1px solid #e4e4e7;padding:10px 16px;overflow:hidden;}
.head-logo{float:left;font-weight:bold;font-size:18px;color:#161616;margin:4px 16px 4px 0;text-decoration:none;}
.head-search{float:left;position:relative;border:1px solid #d4d4d8;border-radius:20px;background:#fff;padding:2px;margin:0 12px 0 0;}
.head-search .search-input{float:left;border:0;background:transparent;color:#161616;padding:6px 10px;min-width:260px;font-size:14px;outline:none;}
.head-search .search-submit{float:left;border:0;background:#0f62fe;color:#fff;padding:6px 16px;font-weight:bold;font-size:13px;border-radius:16px;cursor:pointer;}
.page{display:flex;gap:24px;width:94%;max-width:1200px;margin:0 auto;padding:16px 0 48px;}
.sidebar{width:260px;flex-shrink:0;}
.sidebar h2{font-size:16px;margin:8px 0;}
.sidebar-error{background:#fdecec;color:#a2191f;padding:12px;border-radius:8px;font-size:13px;}
.topic-list{list-style:none;margin:0;padding:0;}
.topic-list .topic-list{padding-left:14px;}
.topic-link{display:block;padding:5px 8px;border-radius:6px;color:#525252;}
.topic-link:hover{background:#ececf0;text-decoration:none;color:#161616;}
.topic-link.on{background:#e8f0fe;color:#0f62fe;font-weight:bold;}
.topic-count{float:right;background:#ececf0;border-radius:10px;padding:0 7px;font-size:11px;color:#525252;}
.results{flex:1;min-width:0;}
.box{background:#fff;margin:0 0 16px;padding:14px;border-radius:10px;box-shadow:0 1px 2px rgba(0,0,0,0.07);}
.hero{text-align:center;padding:56px 16px 32px;}
.hero h1{font-size:40px;margin:0 0 12px;}
.hero p{color:#525252;max-width:640px;margin:0 auto 24px;}
.featured h2{font-size:18px;margin:0 0 12px;}
.featured-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(150px,1fr));gap:12px;}
.featured-card{display:block;background:#fff;border-radius:10px;padding:20px 8px;text-align:center;font-weight:bold;color:#161616;box-shadow:0 1px 2px rgba(0,0,0,0.07);}
.featured-card:hover{box-shadow:0 3px 8px rgba(0,0,0,0.12);text-decoration:none;}
.result-bar{display:flex;align-items:center;justify-content:space-between;margin:0 0 16px;}
.result-count{color:#525252;font-size:13px;}
.page-size label{font-size:12px;color:#525252;}
.page-size select{margin-left:6px;padding:4px 6px;border:1px solid #d4d4d8;border-radius:6px;background:#fff;}
.filters{display:flex;flex-wrap:wrap;gap:12px;align-items:flex-end;margin:0 0 16px;}
.filters label{display:block;font-size:12px;color:#525252;}
.filters select,.filters input{display:block;margin-top:3px;padding:5px 8px;border:1px solid #d4d4d8;border-radius:6px;background:#fff;font-size:13px;}
.filter-apply{padding:6px 16px;border:0;border-radius:6px;background:#0f62fe;color:#fff;font-weight:bold;font-size:13px;cursor:pointer;}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:20px;}
.card{background:#fff;border-radius:10px;overflow:hidden;box-shadow:0 1px 2px rgba(0,0,0,0.07);}
.card:hover{box-shadow:0 3px 10px rgba(0,0,0,0.14);}
.card-thumb{position:relative;display:block;}
.card-thumb img{width:100%;aspect-ratio:16/9;object-fit:cover;display:block;background:#000;}
.badge{position:absolute;bottom:6px;right:6px;background:rgba(0,0,0,0.75);color:#fff;font-size:11px;padding:2px 5px;border-radius:4px;}
.relevance{position:absolute;top:6px;left:6px;background:#0f62fe;color:#fff;font-size:11px;padding:2px 6px;border-radius:4px;}
.card-body{padding:10px 12px 12px;}
.card-title{display:block;font-size:14px;font-weight:bold;line-height:1.35;color:#161616;}
.card-channel{font-size:12px;color:#525252;margin-top:4px;}
.card-meta{font-size:12px;color:#8d8d94;margin-top:2px;}
.chip{display:inline-block;margin:6px 6px 0 0;padding:3px 9px;border-radius:999px;font-size:11px;background:#ececf0;color:#525252;}
.chip:hover{background:#e8f0fe;color:#0f62fe;text-decoration:none;}
.empty-box,.error-box{text-align:center;padding:40px 16px;border-radius:10px;background:#fff;}
.error-box{color:#a2191f;background:#fdecec;}
.error-page{text-align:center;padding:72px 16px;}
.error-page h1{font-size:28px;margin:0 0 10px;}
.retry{display:inline-block;margin-top:14px;padding:8px 20px;border-radius:6px;background:#0f62fe;color:#fff;font-weight:bold;}
.retry:hover{text-decoration:none;}
.pager{text-align:center;margin:24px 0 0;}
.pager a,.pager span{display:inline-block;min-width:30px;padding:5px 8px;margin:0 2px;border-radius:6px;background:#fff;color:#161616;box-shadow:0 1px 2px rgba(0,0,0,0.07);}
.pager span.on{background:#0f62fe;color:#fff;font-weight:bold;}
.pager span.gap{background:transparent;box-shadow:none;color:#525252;}
.watch{display:grid;grid-template-columns:2fr 1fr;gap:24px;width:94%;max-width:1200px;margin:0 auto;padding:16px 0 48px;}
.player video{width:100%;aspect-ratio:16/9;background:#000;border-radius:12px;}
.watch-title{font-size:24px;margin:16px 0 8px;}
.watch-meta{color:#525252;font-size:13px;}
.watch-channel{margin:10px 0;}
.channel-name{font-weight:bold;margin-right:10px;}
.channel-subs{color:#8d8d94;font-size:12px;}
.watch-desc{color:#525252;margin-top:10px;white-space:pre-line;}
.transcript{position:sticky;top:16px;}
.transcript-title{font-size:16px;margin:0 0 10px;}
.transcript-empty{color:#8d8d94;font-size:13px;}
.transcript-scroll{max-height:70vh;overflow-y:auto;border:1px solid #e4e4e7;border-radius:10px;background:#fff;}
.seg{padding:10px 12px;cursor:pointer;font-size:13px;color:#525252;border-bottom:1px solid #f1f1f3;}
.seg:hover{background:#f1f5ff;}
.seg.on{background:#e8f0fe;color:#161616;font-weight:500;}
.seg mark{background:#ffe766;padding:0 2px;border-radius:2px;}
.seg-time{color:#8d8d94;font-size:11px;margin-right:8px;}
.suggestions{position:absolute;top:100%;left:0;right:0;margin-top:4px;background:#fff;border:1px solid #d4d4d8;border-radius:10px;box-shadow:0 6px 18px rgba(0,0,0,0.12);z-index:50;max-height:280px;overflow-y:auto;display:none;}
.sug{padding:9px 14px;font-size:13px;cursor:pointer;}
.sug.on,.sug:hover{background:#ececf0;}
.sug-kind{color:#8d8d94;font-size:11px;margin-right:8px;text-transform:uppercase;}
.sug-count{float:right;color:#8d8d94;font-size:11px;}
hr{border:0;border-top:1px solid #e4e4e7;margin:24px 0;}
`
}
