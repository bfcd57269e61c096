package landing

// pageCSS is shared by both pages. Colors follow the stone/amber palette of
// the brand; .reveal elements fade in when scrolled into view.
const pageCSS = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        :root {
            --amber: #f59e0b;
            --amber-light: #fbbf24;
            --stone-950: #0c0a09;
            --stone-900: #1c1917;
            --cream: #faf7f2;
            --muted: #78716c;
        }
        html { scroll-behavior: smooth; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "Apple SD Gothic Neo", "Noto Sans KR", Roboto, sans-serif;
            line-height: 1.6;
        }
        body.home { background: var(--cream); color: var(--stone-900); }
        body.demo { background: var(--stone-950); color: #fff; }
        a { color: inherit; text-decoration: none; }
        .serif { font-family: Georgia, "Times New Roman", serif; }
        .accent { font-style: italic; color: var(--amber); }
        .container { max-width: 1152px; margin: 0 auto; padding: 0 1.5rem; }
        .eyebrow {
            display: inline-block;
            font-size: 0.8rem;
            letter-spacing: 0.2em;
            text-transform: uppercase;
            color: var(--amber);
            font-weight: 600;
        }
        section { padding: 6rem 0; }
        h1 { font-size: clamp(2.5rem, 6vw, 4.5rem); line-height: 1.1; }
        h2 { font-size: clamp(2rem, 4.5vw, 3.75rem); line-height: 1.15; margin-top: 1rem; }
        h3 { font-size: 1.5rem; margin-bottom: 0.75rem; }
        .lead { margin-top: 1.5rem; font-size: 1.125rem; color: var(--muted); max-width: 48rem; }
        .center { text-align: center; }
        .center .lead { margin-left: auto; margin-right: auto; }

        .btn {
            display: inline-flex;
            align-items: center;
            gap: 0.5rem;
            padding: 1rem 2.5rem;
            border-radius: 999px;
            font-weight: 600;
            font-size: 1.05rem;
            border: 1px solid transparent;
            cursor: pointer;
            transition: background 0.2s, transform 0.2s;
        }
        .btn:hover { transform: translateY(-1px); }
        .btn-primary { background: var(--amber); color: #000; }
        .btn-primary:hover { background: var(--amber-light); }
        .btn-outline { border-color: currentColor; background: transparent; color: inherit; }
        .btn-ghost { background: transparent; color: rgba(255,255,255,0.7); padding: 0.5rem 1rem; }
        .btn-ghost:hover { color: #fff; background: rgba(255,255,255,0.1); }

        .reveal { opacity: 0; transform: translateY(30px); transition: opacity 0.8s ease, transform 0.8s ease; }
        .reveal.in-view { opacity: 1; transform: none; }
        .reveal[data-delay="1"] { transition-delay: 0.1s; }
        .reveal[data-delay="2"] { transition-delay: 0.2s; }
        .reveal[data-delay="3"] { transition-delay: 0.3s; }

        .hero { position: relative; min-height: 100vh; display: flex; align-items: center; overflow: hidden; color: #fff; padding: 0; }
        .hero video { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; }
        .hero::after { content: ""; position: absolute; inset: 0; background: linear-gradient(to bottom, rgba(0,0,0,0.55), rgba(0,0,0,0.35) 50%, rgba(0,0,0,0.75)); }
        .hero .container { position: relative; z-index: 1; }
        .hero .lead { color: rgba(255,255,255,0.8); }
        .hero .actions { margin-top: 2.5rem; display: flex; gap: 1rem; flex-wrap: wrap; }

        .grid { display: grid; gap: 2rem; margin-top: 4rem; }
        .grid-3 { grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
        .grid-2 { grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); }
        .card { padding: 2rem; border-radius: 1.5rem; background: #fff; box-shadow: 0 10px 30px rgba(28,25,23,0.06); }
        .step-number { font-size: 3rem; color: var(--amber); opacity: 0.6; }
        .benefit { display: flex; gap: 1.5rem; }
        .benefit-icon { width: 3.5rem; height: 3.5rem; border-radius: 1rem; background: rgba(245,158,11,0.12); color: var(--amber); display: flex; align-items: center; justify-content: center; font-size: 1.5rem; flex-shrink: 0; }
        .benefit-stat { margin-top: 1rem; font-size: 1.75rem; font-weight: 700; color: var(--amber); }
        .benefit-stat small { font-size: 0.85rem; color: var(--muted); font-weight: 400; margin-left: 0.5rem; }

        .dark { background: var(--stone-900); color: #fff; }
        .dark .lead { color: rgba(255,255,255,0.6); }
        .frame { position: relative; margin-top: 4rem; border-radius: 1.5rem; overflow: hidden; aspect-ratio: 16 / 9; background: #000; box-shadow: 0 25px 60px rgba(245,158,11,0.12); }
        .frame video { width: 100%; height: 100%; object-fit: cover; display: block; }
        .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 1.5rem; margin-top: 3rem; }
        .stat { padding: 1.5rem; border-radius: 1rem; background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); text-align: center; }
        .stat strong { display: block; font-size: 1.875rem; color: var(--amber-light); }
        .stat span { font-size: 0.85rem; letter-spacing: 0.1em; text-transform: uppercase; color: rgba(255,255,255,0.5); }

        .trend { display: flex; gap: 1.25rem; margin-bottom: 2rem; }
        .trend strong { font-size: 2rem; color: var(--amber); min-width: 5.5rem; }
        .phone { max-width: 320px; margin: 0 auto; border-radius: 2.5rem; padding: 0.75rem; background: var(--stone-900); box-shadow: 0 25px 60px rgba(0,0,0,0.25); }
        .phone-header { display: flex; align-items: center; gap: 0.75rem; padding: 0.75rem; color: #fff; font-weight: 600; font-size: 0.9rem; }
        .phone-avatar { width: 2rem; height: 2rem; border-radius: 50%; background: linear-gradient(135deg, var(--amber), #e11d48); }
        .phone video { width: 100%; aspect-ratio: 9 / 16; object-fit: cover; border-radius: 1.5rem; display: block; }
        .phone-caption { padding: 0.75rem; color: rgba(255,255,255,0.8); font-size: 0.85rem; }

        .cta { text-align: center; }
        .cta .actions { margin-top: 2.5rem; display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; }
        footer { padding: 3rem 0; border-top: 1px solid rgba(120,113,108,0.2); }
        footer .container { display: flex; flex-wrap: wrap; gap: 1rem; align-items: center; justify-content: space-between; }
        footer nav { display: flex; gap: 1.5rem; }
        footer p { color: var(--muted); font-size: 0.9rem; }
        .brand { display: inline-flex; align-items: center; gap: 0.6rem; font-size: 1.25rem; }
        .brand-mark { width: 2rem; height: 2rem; border-radius: 50%; background: var(--amber); color: #000; display: flex; align-items: center; justify-content: center; font-size: 0.9rem; }

        .topbar { position: fixed; top: 0; left: 0; right: 0; z-index: 50; padding: 1.5rem 0; }
        .topbar .container { display: flex; align-items: center; justify-content: space-between; }
        .showcase-head { padding-top: 8rem; }
        .badge { display: inline-flex; gap: 0.5rem; padding: 0.5rem 1rem; border-radius: 999px; background: rgba(245,158,11,0.2); color: var(--amber-light); font-size: 0.85rem; font-weight: 500; margin-bottom: 1.5rem; }

        .player { position: relative; margin-top: 3rem; border-radius: 1.5rem; overflow: hidden; aspect-ratio: 16 / 9; background: var(--stone-900); box-shadow: 0 25px 60px rgba(245,158,11,0.1); }
        .player video { width: 100%; height: 100%; object-fit: cover; display: block; }
        .player-surface { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; cursor: pointer; background: rgba(0,0,0,0.3); }
        .player-toggle { width: 6rem; height: 6rem; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 2.25rem; background: var(--amber); color: #000; transition: opacity 0.3s, background 0.3s, transform 0.2s; }
        .player.playing .player-toggle { background: rgba(255,255,255,0.2); color: #fff; backdrop-filter: blur(4px); }
        .player.controls-hidden .player-toggle { opacity: 0; }
        .player:not(.playing) .player-toggle { opacity: 1; }
        .player-bar { position: absolute; left: 0; right: 0; bottom: 0; padding: 1.5rem; display: flex; justify-content: space-between; align-items: center; background: linear-gradient(to top, rgba(0,0,0,0.8), transparent); transition: opacity 0.3s; }
        .player.controls-hidden.playing .player-bar { opacity: 0; }
        .player-meta { font-size: 0.9rem; color: rgba(255,255,255,0.7); }
        .player-meta strong { color: #fff; font-weight: 600; margin-right: 0.5rem; }
        .ctrl-btn { background: none; border: none; color: rgba(255,255,255,0.75); font-size: 1.2rem; padding: 0.5rem; border-radius: 0.5rem; cursor: pointer; }
        .ctrl-btn:hover { background: rgba(255,255,255,0.1); color: #fff; }
        .playing-badge { position: absolute; top: 1.5rem; left: 1.5rem; display: none; gap: 0.5rem; align-items: center; padding: 0.35rem 0.75rem; border-radius: 999px; background: rgba(239,68,68,0.9); font-size: 0.85rem; font-weight: 500; }
        .player.playing .playing-badge { display: inline-flex; }
        .playing-badge::before { content: ""; width: 0.5rem; height: 0.5rem; border-radius: 50%; background: #fff; animation: pulse 1.2s ease-in-out infinite; }
        @keyframes pulse { 50% { opacity: 0.3; } }

        .previews { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.5rem; margin-top: 2.5rem; }
        .preview-card { position: relative; border-radius: 1rem; overflow: hidden; aspect-ratio: 16 / 9; background: var(--stone-900); cursor: pointer; border: none; color: #fff; text-align: left; padding: 0; }
        .preview-card[hidden] { display: none; }
        .preview-card video { width: 100%; height: 100%; object-fit: cover; opacity: 0.6; transition: opacity 0.5s, transform 0.5s; display: block; }
        .preview-card:hover video, .preview-card:focus-visible video { opacity: 0.85; transform: scale(1.05); }
        .preview-info { position: absolute; left: 0; right: 0; bottom: 0; padding: 1rem; background: linear-gradient(to top, rgba(0,0,0,0.8), transparent); }
        .preview-info .category { font-size: 0.75rem; letter-spacing: 0.1em; text-transform: uppercase; color: var(--amber-light); }
        .preview-info .title { font-size: 1.1rem; }
        .preview-info .duration { font-size: 0.85rem; color: rgba(255,255,255,0.5); }
        body.demo footer { border-top-color: rgba(255,255,255,0.1); }
        body.demo footer p { color: rgba(255,255,255,0.4); }

        @media (prefers-reduced-motion: reduce) {
            .reveal { opacity: 1; transform: none; transition: none; }
            html { scroll-behavior: auto; }
        }
`
