/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package hook_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"bennypowers.dev/cartero/hook"
	"bennypowers.dev/cartero/internal/mapfs"
	"bennypowers.dev/cartero/manifest"
	"bennypowers.dev/cartero/testutil"
)

const (
	appRoot      = "/srv/app"
	outputDir    = "/srv/app/build"
	metadataPath = "/srv/app/build/metaData.json"
	homeListing  = "/srv/app/build/a1b2/assets.json"
	homeEntry    = "/srv/app/views/home/index.js"
)

func testConfig() hook.Config {
	cfg := hook.DefaultConfig(outputDir)
	cfg.AppRootDir = appRoot
	cfg.OutputBaseURL = "/static/"
	return cfg
}

func newFixtureHook(t *testing.T, cfg hook.Config) (*hook.Hook, *mapfs.MapFileSystem) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "app", appRoot)
	h, err := hook.New(mfs, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return h, mfs
}

func TestResolveEntryPoint(t *testing.T) {
	h, _ := newFixtureHook(t, testConfig())

	listing, err := h.ResolveEntryPoint(homeEntry)
	if err != nil {
		t.Fatalf("ResolveEntryPoint failed: %v", err)
	}

	wantScript := []string{"a1b2/vendor_77c1.js", "a1b2/home_0e4d.js"}
	if !slices.Equal(listing.Script, wantScript) {
		t.Errorf("Expected scripts %v, got %v", wantScript, listing.Script)
	}
	if !slices.Equal(listing.Style, []string{"a1b2/home_5b20.css"}) {
		t.Errorf("Unexpected styles %v", listing.Style)
	}
}

func TestResolveEntryPointNotFound(t *testing.T) {
	h, _ := newFixtureHook(t, testConfig())

	listing, err := h.ResolveEntryPoint("/srv/app/views/contact/index.js")
	if !errors.Is(err, hook.ErrEntryPointNotFound) {
		t.Fatalf("Expected ErrEntryPointNotFound, got %v", err)
	}
	if listing != nil {
		t.Errorf("Expected no listing, got %+v", listing)
	}
}

func TestResolveEntryPointOutsideAppRoot(t *testing.T) {
	cfg := testConfig()
	cfg.AppRootDir = "/srv/app/views"
	h, _ := newFixtureHook(t, cfg)

	// Keys are computed against the configured root, so the fixture's
	// "views/home/index.js" key no longer matches.
	_, err := h.ResolveEntryPoint(homeEntry)
	if !errors.Is(err, hook.ErrEntryPointNotFound) {
		t.Fatalf("Expected ErrEntryPointNotFound, got %v", err)
	}
}

func TestResolveEntryPointListingErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  error
	}{
		{"listing file missing", "/srv/app/views/unbuilt/index.js", manifest.ErrGroupListingUnreadable},
		{"listing file malformed", "/srv/app/views/broken/index.js", manifest.ErrGroupListingMalformed},
	}

	for _, tt := range tests {
		for _, disable := range []bool{false, true} {
			t.Run(tt.name, func(t *testing.T) {
				cfg := testConfig()
				cfg.DisableCache = disable
				h, _ := newFixtureHook(t, cfg)

				_, err := h.ResolveEntryPoint(tt.entry)
				if !errors.Is(err, tt.want) {
					t.Errorf("Expected %v (disableCache=%v), got %v", tt.want, disable, err)
				}
			})
		}
	}
}

func TestResolveEntryPointCachingEnabled(t *testing.T) {
	h, mfs := newFixtureHook(t, testConfig())

	for range 2 {
		if _, err := h.ResolveEntryPoint(homeEntry); err != nil {
			t.Fatalf("ResolveEntryPoint failed: %v", err)
		}
	}

	if n := mfs.ReadCount(homeListing); n != 1 {
		t.Errorf("Expected listing to be read once, read %d times", n)
	}
	if n := mfs.ReadCount(metadataPath); n != 1 {
		t.Errorf("Expected manifest to be read once, read %d times", n)
	}
}

func TestResolveEntryPointCachingDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.DisableCache = true
	h, mfs := newFixtureHook(t, cfg)

	for range 2 {
		if _, err := h.ResolveEntryPoint(homeEntry); err != nil {
			t.Fatalf("ResolveEntryPoint failed: %v", err)
		}
	}

	if n := mfs.ReadCount(homeListing); n != 2 {
		t.Errorf("Expected listing to be read twice, read %d times", n)
	}
	// One read at construction, one per resolution.
	if n := mfs.ReadCount(metadataPath); n != 3 {
		t.Errorf("Expected manifest to be read 3 times, read %d times", n)
	}
}

func TestResolveEntryPointCachingDisabledSeesNewBuild(t *testing.T) {
	cfg := testConfig()
	cfg.DisableCache = true
	h, mfs := newFixtureHook(t, cfg)

	mfs.AddFile(homeListing, `{"script":["a1b2/home_new.js"],"style":[]}`, 0644)

	listing, err := h.ResolveEntryPoint(homeEntry)
	if err != nil {
		t.Fatalf("ResolveEntryPoint failed: %v", err)
	}
	if !slices.Equal(listing.Script, []string{"a1b2/home_new.js"}) {
		t.Errorf("Expected rebuilt listing, got %v", listing.Script)
	}
}

func TestResolveEntryPointConcurrentReadsOnce(t *testing.T) {
	h, mfs := newFixtureHook(t, testConfig())

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			if _, err := h.ResolveEntryPoint(homeEntry); err != nil {
				t.Errorf("ResolveEntryPoint failed: %v", err)
			}
		})
	}
	wg.Wait()

	if n := mfs.ReadCount(homeListing); n != 1 {
		t.Errorf("Expected listing to be read once, read %d times", n)
	}
}

func TestResolveEntryPointFailedListingIsRetried(t *testing.T) {
	h, mfs := newFixtureHook(t, testConfig())
	entry := "/srv/app/views/unbuilt/index.js"

	if _, err := h.ResolveEntryPoint(entry); !errors.Is(err, manifest.ErrGroupListingUnreadable) {
		t.Fatalf("Expected ErrGroupListingUnreadable, got %v", err)
	}

	mfs.AddFile("/srv/app/build/ffff/assets.json", `{"script":["ffff/late.js"],"style":[]}`, 0644)

	listing, err := h.ResolveEntryPoint(entry)
	if err != nil {
		t.Fatalf("Expected second resolution to succeed, got %v", err)
	}
	if !slices.Equal(listing.Script, []string{"ffff/late.js"}) {
		t.Errorf("Unexpected scripts %v", listing.Script)
	}
}

func TestResolveEntryPointListingIsCallerOwned(t *testing.T) {
	h, _ := newFixtureHook(t, testConfig())

	first, err := h.ResolveEntryPoint(homeEntry)
	if err != nil {
		t.Fatalf("ResolveEntryPoint failed: %v", err)
	}
	first.Script[0] = "tampered.js"

	second, err := h.ResolveEntryPoint(homeEntry)
	if err != nil {
		t.Fatalf("ResolveEntryPoint failed: %v", err)
	}
	if second.Script[0] != "a1b2/vendor_77c1.js" {
		t.Errorf("Expected cached listing to be unaffected, got %v", second.Script)
	}
}

func TestNewManifestFailures(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		disable bool
		want    error
	}{
		{"outdated with cache", "manifest/outdated", false, manifest.ErrOutdatedFormatVersion},
		{"outdated without cache", "manifest/outdated", true, manifest.ErrOutdatedFormatVersion},
		{"legacy with cache", "manifest/legacy", false, manifest.ErrIncompatibleLegacyFormat},
		{"legacy without cache", "manifest/legacy", true, manifest.ErrIncompatibleLegacyFormat},
		{"malformed with cache", "manifest/malformed", false, manifest.ErrMetadataUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, tt.fixture, outputDir)
			cfg := testConfig()
			cfg.DisableCache = tt.disable

			h, err := hook.New(mfs, cfg, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if h != nil {
				t.Error("Expected no hook")
			}
		})
	}
}

func TestNewWithoutBuildAndCacheDisabled(t *testing.T) {
	mfs := mapfs.New()
	cfg := testConfig()
	cfg.DisableCache = true
	logger, logs := testutil.NewObservedLogger()

	h, err := hook.New(mfs, cfg, logger)
	if err != nil {
		t.Fatalf("Expected degraded hook, got %v", err)
	}
	if logs.Len() != 1 {
		t.Errorf("Expected 1 warning, got %d", logs.Len())
	}

	if _, err := h.ResolveEntryPoint(homeEntry); !errors.Is(err, hook.ErrMetadataUnavailable) {
		t.Errorf("Expected ErrMetadataUnavailable from ResolveEntryPoint, got %v", err)
	}
	if _, err := h.ResolveAssetURL("/srv/app/views/home/logo.png"); !errors.Is(err, hook.ErrMetadataUnavailable) {
		t.Errorf("Expected ErrMetadataUnavailable from ResolveAssetURL, got %v", err)
	}
}

func TestAssetURLDoesNotReload(t *testing.T) {
	mfs := mapfs.New()
	cfg := testConfig()
	cfg.DisableCache = true

	h, err := hook.New(mfs, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// The build finishes after the hook started.
	fixture := testutil.NewFixtureFS(t, "app", appRoot)
	for _, p := range []string{metadataPath, homeListing} {
		data, err := fixture.ReadFile(p)
		if err != nil {
			t.Fatalf("Failed to read fixture %s: %v", p, err)
		}
		mfs.AddFile(p, string(data), 0644)
	}

	logo := "/srv/app/views/home/logo.png"
	if _, err := h.ResolveAssetURL(logo); !errors.Is(err, hook.ErrMetadataUnavailable) {
		t.Fatalf("Expected asset lookup to keep the absent manifest, got %v", err)
	}
	reads := mfs.ReadCount(metadataPath)

	if _, err := h.ResolveEntryPoint(homeEntry); err != nil {
		t.Fatalf("ResolveEntryPoint failed: %v", err)
	}

	url, err := h.ResolveAssetURL(logo)
	if err != nil {
		t.Fatalf("Expected asset lookup to use the reloaded manifest, got %v", err)
	}
	if url != "/static/a1b2/logo_3f2a.png" {
		t.Errorf("Unexpected url %q", url)
	}
	if n := mfs.ReadCount(metadataPath); n != reads+1 {
		t.Errorf("Expected only entry point resolution to reload the manifest, got %d reads", n-reads)
	}
}

func TestReloadFailureWrapsCause(t *testing.T) {
	cfg := testConfig()
	cfg.DisableCache = true
	h, mfs := newFixtureHook(t, cfg)

	mfs.AddFile(metadataPath, `{"formatVersion": 2}`, 0644)

	_, err := h.ResolveEntryPoint(homeEntry)
	if !errors.Is(err, hook.ErrMetadataUnavailable) {
		t.Errorf("Expected ErrMetadataUnavailable, got %v", err)
	}
	if !errors.Is(err, manifest.ErrOutdatedFormatVersion) {
		t.Errorf("Expected ErrOutdatedFormatVersion, got %v", err)
	}

	// A failed reload leaves the previous manifest in place.
	if _, err := h.ResolveAssetURL("/srv/app/views/home/logo.png"); err != nil {
		t.Errorf("Expected previous manifest to answer asset lookups, got %v", err)
	}
}

func TestReloadDegradesWhenBuildDisappears(t *testing.T) {
	cfg := testConfig()
	cfg.DisableCache = true
	h, mfs := newFixtureHook(t, cfg)

	mfs.RemoveFile(metadataPath)

	if _, err := h.ResolveEntryPoint(homeEntry); !errors.Is(err, hook.ErrMetadataUnavailable) {
		t.Fatalf("Expected ErrMetadataUnavailable, got %v", err)
	}
	if _, err := h.ResolveAssetURL("/srv/app/views/home/logo.png"); !errors.Is(err, hook.ErrMetadataUnavailable) {
		t.Errorf("Expected the absent manifest to be current, got %v", err)
	}
}

func TestResolveAssetURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"with base url", "/static/", "/static/a1b2/logo_3f2a.png"},
		{"root base url", "/", "/a1b2/logo_3f2a.png"},
		{"absolute base url", "https://cdn.example.com/assets", "https://cdn.example.com/assets/a1b2/logo_3f2a.png"},
		{"without base url", "", "a1b2/logo_3f2a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.OutputBaseURL = tt.baseURL
			h, _ := newFixtureHook(t, cfg)

			got, err := h.ResolveAssetURL("/srv/app/views/home/logo.png")
			if err != nil {
				t.Fatalf("ResolveAssetURL failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveAssetURLNotFound(t *testing.T) {
	h, mfs := newFixtureHook(t, testConfig())
	before := mfs.ReadCount(metadataPath)

	_, err := h.ResolveAssetURL("/srv/app/views/home/missing.png")
	if !errors.Is(err, hook.ErrAssetNotFound) {
		t.Fatalf("Expected ErrAssetNotFound, got %v", err)
	}
	if mfs.ReadCount(metadataPath) != before {
		t.Error("Expected asset lookup to perform no I/O")
	}
}

func TestRenderTags(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(metadataPath, `{
		"formatVersion": 3,
		"entryPointMap": {"views/home/index.js": "g1"},
		"assetMap": {}
	}`, 0644)
	mfs.AddFile("/srv/app/build/g1/assets.json", `{"script":["a.js","b.js"],"style":["c.css"]}`, 0644)

	h, err := hook.New(mfs, testConfig(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	scripts, styles, err := h.RenderTags(homeEntry)
	if err != nil {
		t.Fatalf("RenderTags failed: %v", err)
	}

	wantScripts := `<script type="text/javascript" src="/static/a.js"></script>` + "\n" +
		`<script type="text/javascript" src="/static/b.js"></script>`
	if scripts != wantScripts {
		t.Errorf("Unexpected scripts:\n%s", scripts)
	}
	if styles != `<link rel="stylesheet" href="/static/c.css"/>` {
		t.Errorf("Unexpected styles:\n%s", styles)
	}
}

func TestRenderTagsPropagatesErrors(t *testing.T) {
	h, _ := newFixtureHook(t, testConfig())

	scripts, styles, err := h.RenderTags("/srv/app/views/contact/index.js")
	if !errors.Is(err, hook.ErrEntryPointNotFound) {
		t.Fatalf("Expected ErrEntryPointNotFound, got %v", err)
	}
	if scripts != "" || styles != "" {
		t.Error("Expected no markup on failure")
	}
}

func TestEntryPoints(t *testing.T) {
	h, _ := newFixtureHook(t, testConfig())

	got, err := h.EntryPoints()
	if err != nil {
		t.Fatalf("EntryPoints failed: %v", err)
	}
	want := []string{
		"views/about/index.js",
		"views/broken/index.js",
		"views/home/index.js",
		"views/unbuilt/index.js",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  hook.Config
	}{
		{"missing output dir", hook.Config{}},
		{"relative output dir", hook.Config{OutputDir: "build"}},
		{"relative app root", hook.Config{OutputDir: outputDir, AppRootDir: "app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hook.New(mapfs.New(), tt.cfg, nil)
			if !errors.Is(err, hook.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "app", appRoot)

	h, err := hook.New(mfs, hook.Config{OutputDir: outputDir}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cfg := h.Config()
	if cfg.AppRootDir != "/" {
		t.Errorf("Expected default app root /, got %q", cfg.AppRootDir)
	}
	if cfg.DisableCache {
		t.Error("Expected caching to be enabled by default")
	}
	if got := h.Key(homeEntry); got != "srv/app/views/home/index.js" {
		t.Errorf("Expected key relative to filesystem root, got %q", got)
	}
}

func TestResolveEntryPoints(t *testing.T) {
	h, mfs := newFixtureHook(t, testConfig())

	entries := []string{
		homeEntry,
		"/srv/app/views/about/index.js",
		"/srv/app/views/contact/index.js",
		homeEntry,
	}

	byEntry := make(map[string][]hook.Result)
	for result := range h.ResolveEntryPoints(entries, 4) {
		byEntry[result.EntryPoint] = append(byEntry[result.EntryPoint], result)
	}

	if len(byEntry[homeEntry]) != 2 {
		t.Fatalf("Expected 2 results for home, got %d", len(byEntry[homeEntry]))
	}
	for _, r := range byEntry[homeEntry] {
		if r.Err != nil {
			t.Errorf("Unexpected error for home: %v", r.Err)
		}
	}
	about := byEntry["/srv/app/views/about/index.js"]
	if len(about) != 1 || about[0].Err != nil || !slices.Equal(about[0].Listing.Script, []string{"c3d4/about_81aa.js"}) {
		t.Errorf("Unexpected about result %+v", about)
	}
	contact := byEntry["/srv/app/views/contact/index.js"]
	if len(contact) != 1 || !errors.Is(contact[0].Err, hook.ErrEntryPointNotFound) {
		t.Errorf("Expected ErrEntryPointNotFound for contact, got %+v", contact)
	}

	if n := mfs.ReadCount(homeListing); n != 1 {
		t.Errorf("Expected shared listing to be read once, read %d times", n)
	}
}
