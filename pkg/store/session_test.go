package store

import (
	"sync"
	"testing"

	"agri-solve-be/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppSessionDefaults(t *testing.T) {
	s := NewAppSession("user-1")

	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, LanguageEnglish, s.Language)
	assert.False(t, s.FieldMode)
	assert.Empty(t, s.ScanIds())
	assert.Empty(t, s.FocusedScanId())
}

func TestRecordScanPrependsAndFocuses(t *testing.T) {
	s := NewAppSession("user-1")

	token := s.BeginAnalysis()
	moved := s.RecordScan(token, "scan-1")

	assert.True(t, moved)
	assert.Equal(t, []string{"scan-1"}, s.ScanIds())
	assert.Equal(t, "scan-1", s.FocusedScanId())

	token = s.BeginAnalysis()
	moved = s.RecordScan(token, "scan-2")

	assert.True(t, moved)
	assert.Equal(t, []string{"scan-2", "scan-1"}, s.ScanIds())
	assert.Equal(t, "scan-2", s.FocusedScanId())
}

func TestRecordScanStaleTokenKeepsNewerFocus(t *testing.T) {
	s := NewAppSession("user-1")

	// Two analyses in flight; the second resolves first.
	older := s.BeginAnalysis()
	newer := s.BeginAnalysis()

	moved := s.RecordScan(newer, "scan-new")
	assert.True(t, moved)
	assert.Equal(t, "scan-new", s.FocusedScanId())

	// The older result still lands in history, but may not steal focus.
	moved = s.RecordScan(older, "scan-old")
	assert.False(t, moved)
	assert.Equal(t, "scan-new", s.FocusedScanId())
	assert.Equal(t, []string{"scan-old", "scan-new"}, s.ScanIds())
}

func TestReplaceScans(t *testing.T) {
	s := NewAppSession("user-1")
	s.RecordScan(s.BeginAnalysis(), "scan-1")

	loaded := []string{"scan-9", "scan-8"}
	s.ReplaceScans(loaded)

	assert.Equal(t, []string{"scan-9", "scan-8"}, s.ScanIds())

	// Mutating the caller's slice must not leak into the session.
	loaded[0] = "tampered"
	assert.Equal(t, []string{"scan-9", "scan-8"}, s.ScanIds())
}

func TestClearScansDropsFocus(t *testing.T) {
	s := NewAppSession("user-1")
	s.RecordScan(s.BeginAnalysis(), "scan-1")

	s.ClearScans()

	assert.Empty(t, s.ScanIds())
	assert.Empty(t, s.FocusedScanId())
}

func TestSetFocusedScan(t *testing.T) {
	s := NewAppSession("user-1")
	s.ReplaceScans([]string{"scan-2", "scan-1"})

	s.SetFocusedScan("scan-1")
	assert.Equal(t, "scan-1", s.FocusedScanId())

	s.SetFocusedScan("")
	assert.Empty(t, s.FocusedScanId())
}

func TestSetLocation(t *testing.T) {
	s := NewAppSession("user-1")

	p, locErr := s.CurrentLocation()
	assert.Nil(t, p)
	assert.Empty(t, locErr)

	s.SetLocation(nil, "permission denied")
	p, locErr = s.CurrentLocation()
	assert.Nil(t, p)
	assert.Equal(t, "permission denied", locErr)

	s.SetLocation(&geo.Point{Latitude: 10, Longitude: 20}, "")
	p, locErr = s.CurrentLocation()
	require.NotNil(t, p)
	assert.Equal(t, 10.0, p.Latitude)
	assert.Equal(t, 20.0, p.Longitude)
	assert.Empty(t, locErr)
}

func TestCurrentLocationReturnsCopy(t *testing.T) {
	s := NewAppSession("user-1")
	s.SetLocation(&geo.Point{Latitude: 10, Longitude: 20}, "")

	p, _ := s.CurrentLocation()
	p.Latitude = 99

	again, _ := s.CurrentLocation()
	assert.Equal(t, 10.0, again.Latitude)
}

func TestRecordScanConcurrent(t *testing.T) {
	s := NewAppSession("user-1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordScan(s.BeginAnalysis(), "scan")
		}()
	}
	wg.Wait()

	assert.Len(t, s.ScanIds(), 50)
	assert.Equal(t, "scan", s.FocusedScanId())
}
