package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Time
	f        func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock fires timers synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &fakeTimer{clock: c, deadline: c.now.Add(d), f: f}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired && !timer.deadline.After(c.now) {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.f()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			pending++
		}
	}
	return pending
}

type fakeChart struct {
	spec      render.ChartSpec
	destroyed int
}

func (c *fakeChart) Destroy() {
	c.destroyed++
}

type fakeView struct {
	mu            sync.Mutex
	controlValues map[ControlID]string
	loading       []bool
	sections      map[Section]bool
	resultCount   string
	tables        [][]render.TableRow
	charts        []*fakeChart
	details       []render.Details
	shown         []Message
	visible       []Message
}

func newFakeView() *fakeView {
	return &fakeView{
		controlValues: map[ControlID]string{},
		sections:      map[Section]bool{},
	}
}

func (v *fakeView) ShowMessage(message Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = append(v.shown, message)
	v.visible = append(v.visible, message)
}

func (v *fakeView) ClearMessages() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = nil
}

func (v *fakeView) SetControlValue(control ControlID, display string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.controlValues[control] = display
}

func (v *fakeView) ShowLoading(show bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = append(v.loading, show)
}

func (v *fakeView) SetSectionVisible(section Section, visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sections[section] = visible
}

func (v *fakeView) SetResultCount(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resultCount = text
}

func (v *fakeView) RenderTable(rows []render.TableRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tables = append(v.tables, rows)
}

func (v *fakeView) CreateChart(spec render.ChartSpec) Chart {
	v.mu.Lock()
	defer v.mu.Unlock()
	chart := &fakeChart{spec: spec}
	v.charts = append(v.charts, chart)
	return chart
}

func (v *fakeView) RenderDetails(details render.Details) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.details = append(v.details, details)
}

func (v *fakeView) lastTable() []render.TableRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.tables) == 0 {
		return nil
	}
	return v.tables[len(v.tables)-1]
}

func (v *fakeView) visibleMessages() []Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Message(nil), v.visible...)
}

type fakeProvider struct {
	mu         sync.Mutex
	requests   []models.AnalysisRequest
	requestIDs []string
	respond    func(call int, request models.AnalysisRequest) (models.AnalysisResponse, error)
}

func (p *fakeProvider) Analyze(ctx context.Context, request models.AnalysisRequest) (models.AnalysisResponse, error) {
	p.mu.Lock()
	call := len(p.requests)
	p.requests = append(p.requests, request)
	p.requestIDs = append(p.requestIDs, helpers.RequestIDFromContext(ctx))
	respond := p.respond
	p.mu.Unlock()

	if respond == nil {
		return models.AnalysisResponse{Success: true, Data: sampleResults(5)}, nil
	}
	return respond(call, request)
}

func (p *fakeProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func (p *fakeProvider) lastRequest() models.AnalysisRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[len(p.requests)-1]
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []models.AnalysisRecord
	err     error
}

func (r *fakeRecorder) RecordAnalysis(record models.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return r.err
}

func sampleResults(n int) []models.AnalysisResult {
	results := make([]models.AnalysisResult, n)
	for i := range results {
		total := float64((i*37)%100) + 0.5
		results[i] = models.AnalysisResult{
			StockInfo: models.StockInfo{
				Symbol:      fmt.Sprintf("SYM%d", i),
				CompanyName: fmt.Sprintf("Company %d", i),
			},
			TenYearROEAvg: 15 + float64(i),
			InvestmentScore: models.InvestmentScore{
				TotalScore: total,
				Grade:      models.GradeFromScore(total),
			},
			ChartData: models.ChartData{
				Labels:          []models.ChartLabel{"2022", "2023", "2024"},
				ROEData:         []float64{15, 16, 17},
				ReturnData:      []float64{0, 20, 50},
				InvestmentValue: []float64{1.0, 1.2, 1.5},
			},
		}
	}
	return results
}

func newTestController(provider *fakeProvider) (*Controller, *fakeView, *fakeClock) {
	view := newFakeView()
	clock := newFakeClock()
	controller := NewController(provider, view, Settings{
		Controls:          NewControls(15, 10, 20),
		DebounceDelay:     800 * time.Millisecond,
		ErrorMessageTTL:   5 * time.Second,
		SuccessMessageTTL: 3 * time.Second,
		Clock:             clock,
	})
	controller.Init()
	return controller, view, clock
}
