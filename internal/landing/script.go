package landing

// pageJS runs on both pages. It applies the same rules as the playback
// package: intent survives rejected play requests, switching source reloads
// from the start, previews rewind on leave and the overlay hides a fixed
// delay after the pointer leaves.
const pageJS = `
(function() {
    var body = document.body;
    var viewId = body.getAttribute('data-view-id');
    var hideDelay = parseInt(body.getAttribute('data-hide-delay'), 10) || 1000;
    var threshold = parseFloat(body.getAttribute('data-threshold')) || 0.5;

    function report(video, err, state) {
        if (!navigator.sendBeacon || !viewId) return;
        var payload = JSON.stringify({
            viewId: viewId,
            source: video.currentSrc || video.getAttribute('src') || '',
            reason: (err && err.name) || 'unknown',
            state: state,
            muted: video.muted
        });
        navigator.sendBeacon('/api/diagnostics/playback', payload);
    }

    function requestPlay(video, state) {
        var p = video.play();
        if (p && p.catch) {
            p.catch(function(err) {
                console.log('playback request rejected', err);
                report(video, err, state);
            });
        }
    }

    // Reveal on scroll, repeatedly.
    if ('IntersectionObserver' in window) {
        var revealObserver = new IntersectionObserver(function(entries) {
            entries.forEach(function(entry) {
                entry.target.classList.toggle('in-view', entry.isIntersecting);
            });
        }, { rootMargin: '-100px 0px' });
        document.querySelectorAll('.reveal').forEach(function(el) { revealObserver.observe(el); });
    } else {
        document.querySelectorAll('.reveal').forEach(function(el) { el.classList.add('in-view'); });
    }

    // Videos that play only while at least threshold of them is on screen.
    var visibilityObserver = 'IntersectionObserver' in window ? new IntersectionObserver(function(entries) {
        entries.forEach(function(entry) {
            var video = entry.target.querySelector('video');
            if (!video) return;
            if (entry.isIntersecting) requestPlay(video, 'playing');
            else video.pause();
        });
    }, { threshold: threshold }) : null;
    document.querySelectorAll('[data-play-when-visible]').forEach(function(el) {
        if (visibilityObserver) visibilityObserver.observe(el);
    });
    window.addEventListener('pagehide', function() {
        if (visibilityObserver) visibilityObserver.disconnect();
    });

    var hero = document.getElementById('hero-video');
    if (hero) requestPlay(hero, 'playing');

    // Demo page main player.
    var player = document.getElementById('main-player');
    if (!player) return;
    var video = player.querySelector('video');
    var surface = player.querySelector('.player-surface');
    var muteBtn = player.querySelector('[data-action="mute"]');
    var titleEl = player.querySelector('[data-role="title"]');
    var metaEl = player.querySelector('[data-role="duration"]');
    var playing = false;
    var hideTimer = null;

    function setPlaying(desired) {
        playing = desired;
        player.classList.toggle('playing', playing);
        if (playing) requestPlay(video, 'playing');
        else video.pause();
    }

    function showControls() {
        clearTimeout(hideTimer);
        hideTimer = null;
        player.classList.remove('controls-hidden');
    }

    function scheduleHide() {
        clearTimeout(hideTimer);
        hideTimer = setTimeout(function() {
            hideTimer = null;
            player.classList.add('controls-hidden');
        }, hideDelay);
    }

    function switchSource(src) {
        video.setAttribute('src', src);
        video.load();
        video.currentTime = 0;
        playing = true;
        player.classList.add('playing');
        requestPlay(video, 'loading');
    }

    surface.addEventListener('click', function() { setPlaying(!playing); });
    player.addEventListener('pointerenter', showControls);
    player.addEventListener('pointerleave', scheduleHide);
    if (muteBtn) {
        muteBtn.addEventListener('click', function(e) {
            e.stopPropagation();
            video.muted = !video.muted;
            muteBtn.setAttribute('aria-pressed', video.muted ? 'true' : 'false');
            muteBtn.textContent = video.muted ? '🔇' : '🔊';
        });
    }
    window.addEventListener('pagehide', function() {
        clearTimeout(hideTimer);
        hideTimer = null;
    });

    var cards = Array.prototype.slice.call(document.querySelectorAll('.preview-card'));

    function renderPreviews() {
        var main = video.getAttribute('src');
        cards.forEach(function(card) {
            card.hidden = card.getAttribute('data-src') === main;
        });
    }

    cards.forEach(function(card) {
        var preview = card.querySelector('video');
        card.addEventListener('mouseenter', function() {
            preview.muted = true;
            preview.loop = true;
            requestPlay(preview, 'playing');
        });
        card.addEventListener('mouseleave', function() {
            preview.pause();
            preview.currentTime = 0;
        });
        card.addEventListener('click', function() {
            preview.pause();
            preview.currentTime = 0;
            switchSource(card.getAttribute('data-src'));
            if (titleEl) titleEl.textContent = card.getAttribute('data-title');
            if (metaEl) metaEl.textContent = card.getAttribute('data-duration');
            renderPreviews();
            window.scrollTo({ top: 0, behavior: 'smooth' });
        });
    });
    renderPreviews();
})();
`
