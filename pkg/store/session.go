package store

import (
	"sync"

	"agri-solve-be/pkg/geo"
)

// Supported UI languages.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
	LanguageTamil   = "ta"
	LanguageTelugu  = "te"
)

// AppSession is the per-user application state held in memory for the
// lifetime of a signed-in session: cached scan history (newest first), the
// currently focused scan, UI preferences and the last known location.
// All mutation goes through methods; the mutex keeps concurrent requests for
// the same user consistent.
type AppSession struct {
	mu sync.Mutex

	UserID    string
	Language  string
	FieldMode bool
	Listening bool

	location      *geo.Point
	locationError string

	scanIds       []string
	focusedScanId string

	// Analysis generation tokens. A resolving analysis may only take the
	// focused-scan slot if no newer analysis has resolved before it.
	generation uint64
	applied    uint64
}

func NewAppSession(userID string) *AppSession {
	return &AppSession{
		UserID:   userID,
		Language: LanguageEnglish,
	}
}

// BeginAnalysis hands out a generation token for one analyze invocation.
func (s *AppSession) BeginAnalysis() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// RecordScan prepends a saved scan to the cached history. The scan becomes
// the focused scan only if its generation token is newer than the last one
// applied, so a stale response cannot overwrite a newer result. Reports
// whether focus moved.
func (s *AppSession) RecordScan(token uint64, scanId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scanIds = append([]string{scanId}, s.scanIds...)

	if token <= s.applied {
		return false
	}
	s.applied = token
	s.focusedScanId = scanId
	return true
}

// ReplaceScans swaps in a freshly loaded history, newest first.
func (s *AppSession) ReplaceScans(scanIds []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanIds = append([]string(nil), scanIds...)
}

// ClearScans empties the cached history and drops the focused scan.
func (s *AppSession) ClearScans() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanIds = nil
	s.focusedScanId = ""
}

func (s *AppSession) ScanIds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.scanIds...)
}

func (s *AppSession) FocusedScanId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focusedScanId
}

// SetFocusedScan moves focus explicitly (expand/collapse in the UI).
// An empty id clears focus.
func (s *AppSession) SetFocusedScan(scanId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedScanId = scanId
}

// SetLocation stores a one-shot geolocation result; a successful fix clears
// any previous error.
func (s *AppSession) SetLocation(p *geo.Point, locErr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = p
	s.locationError = locErr
}

func (s *AppSession) CurrentLocation() (*geo.Point, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location == nil {
		return nil, s.locationError
	}
	p := *s.location
	return &p, s.locationError
}
