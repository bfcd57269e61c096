package landing

import "html/template"

const pageHead = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}">
    <meta property="og:title" content="{{.Title}}">
    <meta property="og:description" content="{{.Description}}">
    <meta property="og:type" content="website">
    <meta property="og:site_name" content="StoryBite">
    {{if .OGVideo}}<meta property="og:video" content="{{.OGVideo}}">
    <meta property="og:video:type" content="video/mp4">{{end}}
    <style nonce="{{.Nonce}}">` + pageCSS + `</style>
    {{if .AnalyticsScript}}<script defer nonce="{{.Nonce}}" src="{{.AnalyticsScript}}"></script>{{end}}
</head>
`

const pageScript = `
    <script nonce="{{.Nonce}}">` + pageJS + `</script>
</body>
</html>`

const footerPartial = `{{define "footer"}}
    <footer>
        <div class="container">
            <div>
                <span class="brand serif"><span class="brand-mark">✦</span>{{.Brand}}</span>
                {{if .Footer.Tagline}}<p>{{.Footer.Tagline}}</p>{{end}}
            </div>
            {{if .Footer.Links}}<nav>{{range .Footer.Links}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</nav>{{end}}
            <p>{{.Footer.Copyright}}</p>
        </div>
    </footer>
{{end}}`

var homePageTemplate = template.Must(template.New("home").Parse(pageHead + `<body class="home" data-view-id="{{.ViewID}}" data-hide-delay="{{.HideDelayMS}}" data-threshold="{{.Threshold}}">
{{with .Content}}
    <section class="hero">
        <video id="hero-video" src="{{$.HeroVideo}}" autoplay muted loop playsinline></video>
        <div class="container reveal">
            <span class="eyebrow">{{.Hero.Eyebrow}}</span>
            <h1 class="serif">{{.Hero.Title}}<br><span class="accent">{{.Hero.Accent}}</span></h1>
            <p class="lead">{{.Hero.Subtitle}}</p>
            <div class="actions">
                <a class="btn btn-primary" href="#cta" data-testid="button-start-story">{{.Hero.Primary}}</a>
                <a class="btn btn-outline" href="/demo" data-testid="button-watch-demo">{{.Hero.Demo}}</a>
            </div>
        </div>
    </section>

    <section id="how-it-works">
        <div class="container">
            <div class="center reveal">
                <span class="eyebrow">{{.HowItWorks.Eyebrow}}</span>
                <h2 class="serif">{{.HowItWorks.Title}} <span class="accent">{{.HowItWorks.Accent}}</span></h2>
            </div>
            <div class="grid grid-3">
                {{range $i, $step := .Steps}}
                <div class="card reveal" data-delay="{{$i}}">
                    <span class="step-number serif">{{$step.Number}}</span>
                    <h3 class="serif">{{$step.Title}}</h3>
                    <p>{{$step.Description}}</p>
                </div>
                {{end}}
            </div>
        </div>
    </section>

    <section class="dark" id="demo-video">
        <div class="container">
            <div class="center reveal">
                <span class="eyebrow">{{.DemoVideo.Eyebrow}}</span>
                <h2 class="serif">{{.DemoVideo.Title}} <span class="accent">{{.DemoVideo.Accent}}</span></h2>
                <p class="lead">{{.DemoVideo.Subtitle}}</p>
            </div>
            <div class="frame reveal" data-delay="2" data-play-when-visible>
                <video src="{{$.DemoVideo}}" muted loop playsinline preload="metadata"></video>
            </div>
            <div class="stats reveal" data-delay="3">
                {{range .DemoStats}}<div class="stat"><strong>{{.Value}}</strong><span>{{.Label}}</span></div>{{end}}
            </div>
        </div>
    </section>

    <section id="benefits">
        <div class="container">
            <div class="center reveal">
                <span class="eyebrow">{{.Benefits.Eyebrow}}</span>
                <h2 class="serif">{{.Benefits.Title}} <span class="accent">{{.Benefits.Accent}}</span></h2>
                <p class="lead">{{.Benefits.Subtitle}}</p>
            </div>
            <div class="grid grid-2">
                {{range $i, $b := .BenefitList}}
                <div class="card benefit reveal" data-delay="{{$i}}">
                    <div class="benefit-icon">{{$b.Icon}}</div>
                    <div>
                        <h3 class="serif">{{$b.Title}}</h3>
                        <p>{{$b.Description}}</p>
                        <p class="benefit-stat">{{$b.Stat}}<small>{{$b.StatLabel}}</small></p>
                    </div>
                </div>
                {{end}}
            </div>
        </div>
    </section>

    <section id="instagram">
        <div class="container">
            <div class="center reveal">
                <span class="eyebrow">{{.Instagram.Eyebrow}}</span>
                <h2 class="serif">{{.Instagram.Title}} <span class="accent">{{.Instagram.Accent}}</span></h2>
                <p class="lead">{{.Instagram.Subtitle}}</p>
            </div>
            <div class="grid grid-2">
                <div class="reveal" data-delay="1">
                    {{range .Trends}}
                    <div class="trend">
                        <strong class="serif">{{.Stat}}</strong>
                        <div><h3>{{.Title}}</h3><p>{{.Description}}</p></div>
                    </div>
                    {{end}}
                </div>
                <div class="reveal" data-delay="2">
                    <div class="phone">
                        <div class="phone-header"><span class="phone-avatar"></span>{{.ReelHandle}}</div>
                        <div data-play-when-visible>
                            <video src="{{$.ReelVideo}}" muted loop playsinline preload="metadata"></video>
                        </div>
                        <p class="phone-caption"><strong>{{.ReelHandle}}</strong> {{.ReelCaption}}</p>
                    </div>
                </div>
            </div>
        </div>
    </section>

    <section class="cta dark" id="cta">
        <div class="container reveal">
            <h2 class="serif">{{.CTA.Title}}</h2>
            <p class="lead">{{.CTA.Subtitle}}</p>
            <div class="actions">
                <a class="btn btn-primary" href="#cta" data-testid="button-start-your-story">{{.CTA.Primary}}</a>
                <a class="btn btn-outline" href="/demo" data-testid="button-see-examples">{{.CTA.Demo}}</a>
            </div>
        </div>
    </section>
{{template "footer" .}}
{{end}}` + pageScript + footerPartial))

var demoPageTemplate = template.Must(template.New("demo").Parse(pageHead + `<body class="demo" data-view-id="{{.ViewID}}" data-hide-delay="{{.HideDelayMS}}" data-threshold="{{.Threshold}}">
{{with .Content}}
    <header class="topbar">
        <div class="container">
            <a class="btn btn-ghost" href="/" data-testid="button-back-home">← {{.Back}}</a>
            <span class="brand serif"><span class="brand-mark">✦</span>{{.Brand}}</span>
        </div>
    </header>

    <section class="showcase-head">
        <div class="container">
            <div class="center reveal">
                <span class="badge">▶ {{.Badge}}</span>
                <h1 class="serif">{{.Title}} <span class="accent">{{.Accent}}</span> in Action</h1>
                <p class="lead">{{.Subtitle}}</p>
            </div>

            <div class="player controls-hidden reveal" id="main-player" data-delay="2">
                <video src="{{$.Main.Source}}" playsinline preload="metadata"></video>
                <div class="player-surface" data-testid="button-play-video">
                    <span class="player-toggle" aria-hidden="true">▶</span>
                </div>
                <span class="playing-badge">Playing</span>
                <div class="player-bar">
                    <span class="player-meta"><strong data-role="title">{{$.Main.Title}}</strong><span data-role="duration">{{$.Main.Duration}}</span></span>
                    <button class="ctrl-btn" type="button" data-action="mute" aria-pressed="false" data-testid="button-toggle-mute">🔊</button>
                </div>
            </div>

            <div class="stats reveal" data-delay="3">
                {{range .Stats}}<div class="stat"><strong>{{.Value}}</strong><span>{{.Label}}</span></div>{{end}}
            </div>
        </div>
    </section>

    <section>
        <div class="container">
            <div class="center reveal">
                <h2 class="serif">{{.More.Title}}</h2>
                <p class="lead">{{.More.Subtitle}}</p>
            </div>
            <div class="previews">
                {{range $i, $card := $.Cards}}
                <button class="preview-card reveal" type="button" data-delay="{{$i}}" data-id="{{$card.ID}}" data-src="{{$card.Source}}" data-title="{{$card.Title}}" data-duration="{{$card.Duration}}" data-testid="card-video-{{$card.ID}}"{{if eq $card.Source $.Main.Source}} hidden{{end}}>
                    <video src="{{$card.Source}}" muted loop playsinline preload="metadata"></video>
                    <span class="preview-info">
                        <span class="category">{{$card.Category}}</span><br>
                        <span class="title serif">{{$card.Title}}</span><br>
                        <span class="duration">{{$card.Duration}}</span>
                    </span>
                </button>
                {{end}}
            </div>
        </div>
    </section>

    <section class="cta">
        <div class="container reveal">
            <h2 class="serif">{{.CTA.Title}}</h2>
            <p class="lead">{{.CTA.Subtitle}}</p>
            <div class="actions">
                <a class="btn btn-primary" href="/#cta" data-testid="button-create-story">{{.CTA.Primary}}</a>
            </div>
        </div>
    </section>
{{template "footer" .}}
{{end}}` + pageScript + footerPartial))
