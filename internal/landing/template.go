package landing

import "html/template"

// pageTpl renders both layouts. All user-supplied fields go through
// html/template's contextual escaping: element content is entity-escaped and
// inline-script values are JS-escaped, so listing text cannot break out of
// the markup.
var pageTpl = template.Must(template.New("landing").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.MetaDesc}}">
{{if .Keywords}}<meta name="keywords" content="{{.Keywords}}">
{{end}}<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #222; background: #fafafa; }
h1 { font-size: 1.9rem; }
.price { font-size: 1.5rem; font-weight: 700; color: #1a6b3c; }

.hero-video { position: relative; height: 100vh; overflow: hidden; background: #000; }
.video-bg { position: absolute; top: 50%; left: 50%; width: 100vw; height: 56.25vw;
  min-height: 100vh; min-width: 177.78vh; transform: translate(-50%, -50%); border: 0; pointer-events: none; }
.overlay-card { position: absolute; left: 6%; bottom: 10%; max-width: 420px;
  background: rgba(255,255,255,.92); border-radius: 12px; padding: 28px; }
.chips { list-style: none; display: flex; flex-wrap: wrap; gap: 6px; margin: 14px 0; }
.chip { background: #eef4ef; color: #1a6b3c; border-radius: 999px; padding: 4px 12px; font-size: .8rem; }
.cta { margin-top: 14px; border: 0; border-radius: 8px; background: #1a6b3c; color: #fff;
  padding: 12px 22px; font-size: 1rem; cursor: pointer; }
.modal { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.55); z-index: 10; }
.modal.open { display: flex; align-items: center; justify-content: center; }
.modal-box { background: #fff; border-radius: 12px; padding: 32px; min-width: 280px; text-align: center; }
.modal-box .close { margin-top: 18px; background: #ddd; border: 0; border-radius: 6px; padding: 8px 16px; cursor: pointer; }

.hero-slider { position: relative; height: 62vh; overflow: hidden; }
.slide { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; animation: crossfade 12s infinite; }
.slide-1 { animation-delay: -6s; }
@keyframes crossfade { 0% {opacity:1} 42% {opacity:1} 50% {opacity:0} 92% {opacity:0} 100% {opacity:1} }
.hero-caption { position: absolute; left: 0; right: 0; bottom: 0; padding: 24px 6%;
  background: linear-gradient(transparent, rgba(0,0,0,.72)); color: #fff; }
.hero-caption .price { color: #d7f5c9; }

.carousel, .mini-carousel { position: relative; display: flex; align-items: center; gap: 8px; padding: 24px 4%; }
.track { display: flex; gap: 12px; overflow-x: hidden; scroll-behavior: smooth; flex: 1; }
.card { flex: 0 0 calc(25% - 9px); margin: 0; }
.card.small { flex: 0 0 calc(33.33% - 8px); }
.card img { width: 100%; height: 170px; object-fit: cover; border-radius: 8px; display: block; }
.nav { border: 0; background: #fff; box-shadow: 0 1px 4px rgba(0,0,0,.25); border-radius: 50%;
  width: 36px; height: 36px; cursor: pointer; font-size: 1rem; }
@media (max-width: 700px) {
  .card { flex: 0 0 calc(50% - 6px); }
  .card.small { flex: 0 0 100%; }
}

.info { max-width: 880px; margin: 0 auto; padding: 32px 4% 64px; }
.info h2 { margin-bottom: 20px; }
.info h3 { margin: 24px 0 10px; }
.bands { display: flex; flex-direction: column; gap: 3px; max-width: 420px; }
.band { color: #fff; font-weight: 700; padding: 4px 8px; border-radius: 0 4px 4px 0;
  text-shadow: 0 1px 1px rgba(0,0,0,.35); }
.band.active { outline: 3px solid #222; outline-offset: 2px; }
.band.pending { opacity: .3; filter: grayscale(1); }
.dpe-label { margin-top: 10px; font-weight: 700; }
.facts { list-style: none; margin-top: 10px; }
.facts li { display: flex; justify-content: space-between; padding: 9px 0; border-bottom: 1px solid #e4e4e4; }
.facts span { color: #777; }
.description { margin-top: 24px; white-space: pre-line; line-height: 1.5; }
#map-canvas { margin-top: 8px; height: 300px; border-radius: 8px; background: #e9e9e9;
  display: flex; align-items: center; justify-content: center; color: #777; }
#map-canvas iframe { width: 100%; height: 100%; border: 0; border-radius: 8px; }
</style>
</head>
<body>
{{if .Video}}<div class="hero-video">
  <iframe class="video-bg" src="{{.Video}}" title="{{.Title}}" allow="autoplay; encrypted-media" allowfullscreen></iframe>
  <div class="overlay-card">
    <h1>{{.Title}}</h1>
    <ul class="chips">{{range .Amenities}}<li class="chip">{{.}}</li>{{end}}</ul>
    <p class="price">{{.Price}}</p>
    <button class="cta" onclick="document.getElementById('contact-modal').classList.add('open')">{{.T.Visit}}</button>
  </div>
  <div id="contact-modal" class="modal">
    <div class="modal-box">
      <h3>{{.T.Contact}}</h3>
      <p>{{.FirstName}} {{.LastName}}</p>
      <p>{{.Phone}}</p>
      <button class="close" onclick="document.getElementById('contact-modal').classList.remove('open')">{{.T.Close}}</button>
    </div>
  </div>
</div>
{{else}}<div class="hero-slider">
  {{range $i, $src := .Slider}}<img class="slide slide-{{$i}}" src="{{$src}}" alt="{{$.T.PhotoAlt}}">
  {{end}}<div class="hero-caption">
    <h1>{{.Title}}</h1>
    <p class="price">{{.Price}}</p>
  </div>
</div>
<div class="carousel" id="carousel">
  <button class="nav" onclick="turn('carousel', -1, false)" aria-label="previous">&#10094;</button>
  <div class="track">
    {{range .Carousel}}<figure class="card"><img src="{{.}}" alt="{{$.T.PhotoAlt}}"></figure>
    {{end}}</div>
  <button class="nav" onclick="turn('carousel', 1, false)" aria-label="next">&#10095;</button>
</div>
<div class="mini-carousel" id="mini">
  <button class="nav" onclick="turn('mini', -1, true)" aria-label="previous">&#10094;</button>
  <div class="track">
    {{range .Mini}}<figure class="card small"><img src="{{.}}" alt="{{$.T.PhotoAlt}}"></figure>
    {{end}}</div>
  <button class="nav" onclick="turn('mini', 1, true)" aria-label="next">&#10095;</button>
</div>
{{end}}
<section class="info">
  <h2>{{.T.AdditionalInfo}}</h2>

  <h3>{{.T.EnergyLabel}}</h3>
  <div class="bands">
    {{range .Bands}}<div class="band{{if .Active}} active{{end}}{{if .Pending}} pending{{end}}" style="background-color: {{.Color}}; width: {{.Width}}%">{{.Grade}}</div>
    {{end}}</div>
  <p class="dpe-label">{{.GradeLabel}}</p>

  <h3>{{.T.KeyFacts}}</h3>
  <ul class="facts">
    <li><span>{{.T.TypeLabel}}</span>{{.PropertyType}}</li>
    <li><span>{{.T.CityLabel}}</span>{{.City}}, {{.Country}}</li>
    <li><span>{{.T.SurfaceLabel}}</span>{{.Surface}}</li>
    <li><span>{{.T.RoomsLabel}}</span>{{.Rooms}}</li>
    <li><span>{{.T.YearLabel}}</span>{{.Year}}</li>
    <li><span>{{.T.PriceLabel}}</span>{{.Price}}</li>
  </ul>

  {{if .Description}}<h3>{{.T.DescriptionLabel}}</h3>
  <p class="description">{{.Description}}</p>
  {{end}}
  <h3>{{.T.MapTitle}}</h3>
  <div id="map-canvas" data-fallback="{{.T.MapFallback}}"></div>
</section>
<script type="application/ld+json">{{.JSONLD}}</script>
<script>
function turn(id, dir, small) {
  var track = document.querySelector('#' + id + ' .track');
  var card = track && track.querySelector('.card');
  if (!card) return;
  var narrow = window.matchMedia('(max-width: 700px)').matches;
  var page = small ? (narrow ? 1 : 3) : (narrow ? 2 : 4);
  track.scrollBy({left: dir * (card.offsetWidth + 12) * page, behavior: 'smooth'});
}
(function () {
  var canvas = document.getElementById('map-canvas');
  if (!canvas) return;
  var query = {{.GeoQuery}};
  fetch('https://nominatim.openstreetmap.org/search?format=json&limit=1&q=' + encodeURIComponent(query))
    .then(function (r) { return r.json(); })
    .then(function (results) {
      if (!results || !results.length) throw new Error('no result');
      var lat = parseFloat(results[0].lat), lon = parseFloat(results[0].lon);
      var d = 0.02;
      var frame = document.createElement('iframe');
      frame.src = 'https://www.openstreetmap.org/export/embed.html?bbox='
        + (lon - d) + ',' + (lat - d) + ',' + (lon + d) + ',' + (lat + d)
        + '&layer=mapnik&marker=' + lat + ',' + lon;
      canvas.textContent = '';
      canvas.appendChild(frame);
    })
    .catch(function () { canvas.textContent = canvas.getAttribute('data-fallback'); });
})();
</script>
</body>
</html>
`
