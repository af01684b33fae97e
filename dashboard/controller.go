package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/interfaces"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

const (
	MessageInvalidInput      = "올바른 분석 조건을 입력해주세요."
	MessageAnalysisFailed    = "분석 중 오류가 발생했습니다."
	MessageConnectionFailed  = "서버 연결에 실패했습니다. 서버가 실행 중인지 확인해주세요."
	MessageAnalysisCompleted = "%d개 기업 분석이 완료되었습니다."
	ResultCountPending       = "분석 중..."
)

type Settings struct {
	Controls          Controls
	DebounceDelay     time.Duration
	ErrorMessageTTL   time.Duration
	SuccessMessageTTL time.Duration
	// Clock defaults to the system clock.
	Clock Clock
}

// Controller owns the analysis state of one dashboard session: the current
// result set, whether an analysis has been attempted yet and the live chart.
type Controller struct {
	provider  interfaces.AnalysisProvider
	recorder  interfaces.AnalysisRecorder
	view      View
	clock     Clock
	debouncer *Debouncer
	messages  *MessageBoard
	inFlight  sync.WaitGroup

	mu                          sync.Mutex
	controls                    Controls
	results                     []models.AnalysisResult
	hasPerformedInitialAnalysis bool
	currentChart                Chart
}

func NewController(provider interfaces.AnalysisProvider, view View, settings Settings) *Controller {
	clock := settings.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		provider:  provider,
		view:      view,
		clock:     clock,
		controls:  settings.Controls,
		debouncer: NewDebouncer(clock, settings.DebounceDelay),
		messages:  NewMessageBoard(view, clock, settings.ErrorMessageTTL, settings.SuccessMessageTTL),
	}
}

// SetRecorder enables the analysis history.
func (c *Controller) SetRecorder(recorder interfaces.AnalysisRecorder) {
	c.recorder = recorder
}

// Init paints the control values and hides the result sections.
func (c *Controller) Init() {
	c.mu.Lock()
	controls := c.controls
	c.mu.Unlock()

	for _, control := range ControlOrder {
		c.view.SetControlValue(control, controls.Display(control))
	}
	c.view.ShowLoading(false)
	c.view.SetSectionVisible(SectionResults, false)
	c.view.SetSectionVisible(SectionChart, false)
	c.view.SetSectionVisible(SectionDetails, false)
}

func (c *Controller) SetMinROE(value float64) {
	c.updateControl(ControlMinROE, func(controls *Controls) { controls.MinROE = value })
}

func (c *Controller) SetYears(value int) {
	c.updateControl(ControlYears, func(controls *Controls) { controls.Years = value })
}

func (c *Controller) SetLimit(value int) {
	c.updateControl(ControlLimit, func(controls *Controls) { controls.Limit = value })
}

// AdjustControl moves a control within its range; a change schedules an
// automatic re-analysis.
func (c *Controller) AdjustControl(control ControlID, steps int) {
	c.mu.Lock()
	changed := c.controls.Adjust(control, steps)
	display := c.controls.Display(control)
	c.mu.Unlock()

	if !changed {
		return
	}
	c.view.SetControlValue(control, display)
	c.ScheduleAutoAnalysis()
}

func (c *Controller) updateControl(control ControlID, update func(controls *Controls)) {
	c.mu.Lock()
	update(&c.controls)
	display := c.controls.Display(control)
	c.mu.Unlock()

	c.view.SetControlValue(control, display)
	c.ScheduleAutoAnalysis()
}

// ScheduleAutoAnalysis restarts the debounce window. Nothing is scheduled
// until a first analysis has been attempted.
func (c *Controller) ScheduleAutoAnalysis() {
	c.mu.Lock()
	armed := c.hasPerformedInitialAnalysis
	c.mu.Unlock()

	if !armed {
		return
	}
	c.debouncer.Trigger(func() {
		c.PerformAnalysis(context.Background(), true)
	})
}

// Analyze starts a manual analysis without blocking the caller.
func (c *Controller) Analyze() {
	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()
		c.PerformAnalysis(context.Background(), false)
	}()
}

// PerformAnalysis runs one request/response cycle with the current control
// values. Automatic runs never show banners or the loading indicator.
// Overlapping runs are not coordinated: the last response to arrive wins.
func (c *Controller) PerformAnalysis(ctx context.Context, isAuto bool) {
	trigger := models.TriggerManual
	if isAuto {
		trigger = models.TriggerAuto
	}

	c.mu.Lock()
	request := c.controls.Request()
	c.mu.Unlock()

	if err := request.Validate(); err != nil {
		helpers.Logger.Debugln(fmt.Sprintf("controller: %s analysis skipped: %s", trigger, err.Error()))
		if !isAuto {
			c.messages.ShowError(MessageInvalidInput)
		}
		return
	}

	c.mu.Lock()
	c.hasPerformedInitialAnalysis = true
	c.mu.Unlock()

	if isAuto {
		c.view.SetResultCount(ResultCountPending)
	} else {
		c.view.ShowLoading(true)
		defer c.view.ShowLoading(false)
		c.hideResults()
	}

	requestID := helpers.NewRequestID()
	started := c.clock.Now()
	response, err := c.provider.Analyze(helpers.WithRequestID(ctx, requestID), request)

	record := models.AnalysisRecord{
		RequestID: requestID,
		Trigger:   trigger,
		Request:   request,
		StartedAt: started,
		Duration:  c.clock.Now().Sub(started),
	}

	switch {
	case err != nil:
		record.Outcome = models.OutcomeFailed
		record.Message = err.Error()
		helpers.Logger.Warnln(fmt.Sprintf("controller: %s analysis %s failed: %s", trigger, requestID, err.Error()))
		if !isAuto {
			c.messages.ShowError(MessageConnectionFailed)
		}
	case !response.Success:
		record.Outcome = models.OutcomeRejected
		record.Message = response.Message
		helpers.Logger.Warnln(fmt.Sprintf("controller: %s analysis %s rejected: %s", trigger, requestID, response.Message))
		if !isAuto {
			message := response.Message
			if message == "" {
				message = MessageAnalysisFailed
			}
			c.messages.ShowError(message)
		}
	default:
		record.Outcome = models.OutcomeSucceeded
		record.Message = response.Message
		record.Results = c.displayResults(response.Data)
		summary := fmt.Sprintf("%s analysis %s (%s): %d companies", trigger, requestID, request.String(), len(record.Results))
		if isAuto {
			helpers.Logger.Debugln(summary)
		} else {
			helpers.Logger.Infoln(summary)
			c.messages.ShowSuccess(fmt.Sprintf(MessageAnalysisCompleted, len(record.Results)))
		}
	}

	c.record(record)
}

// displayResults replaces the result set and repaints the table in one step,
// so the table always matches the last response applied.
func (c *Controller) displayResults(results []models.AnalysisResult) []models.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = results
	rows := render.BuildTableRows(c.results)
	c.view.SetSectionVisible(SectionResults, true)
	c.view.SetResultCount(render.ResultCountText(len(rows)))
	c.view.RenderTable(rows)

	return append([]models.AnalysisResult(nil), c.results...)
}

func (c *Controller) hideResults() {
	c.view.SetSectionVisible(SectionResults, false)
	c.view.SetSectionVisible(SectionChart, false)
	c.view.SetSectionVisible(SectionDetails, false)
	c.messages.Clear()
}

// ShowChart draws the chart and detail panel of symbol. It reports false and
// leaves everything untouched when symbol is not in the current results.
func (c *Controller) ShowChart(symbol string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var selected *models.AnalysisResult
	for i := range c.results {
		if c.results[i].StockInfo.Symbol == symbol {
			selected = &c.results[i]
			break
		}
	}
	if selected == nil {
		helpers.Logger.Debugln("controller: no result for symbol " + symbol)
		return false
	}

	if c.currentChart != nil {
		c.currentChart.Destroy()
		c.currentChart = nil
	}
	c.currentChart = c.view.CreateChart(render.BuildChart(*selected))
	c.view.RenderDetails(render.BuildDetails(*selected))
	c.view.SetSectionVisible(SectionChart, true)
	c.view.SetSectionVisible(SectionDetails, true)
	return true
}

func (c *Controller) record(record models.AnalysisRecord) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordAnalysis(record); err != nil {
		helpers.Logger.Errorln("controller: recording analysis " + record.RequestID + ": " + err.Error())
	}
}

// Results returns a copy of the current result set in display order.
func (c *Controller) Results() []models.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.AnalysisResult(nil), c.results...)
}

func (c *Controller) Controls() Controls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controls
}

func (c *Controller) HasPerformedInitialAnalysis() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasPerformedInitialAnalysis
}

// Wait blocks until the analyses started with Analyze have finished. Runs
// fired by the debounce timer and direct PerformAnalysis calls are not
// tracked.
func (c *Controller) Wait() {
	c.inFlight.Wait()
}

// Close stops the pending timers. Requests already sent are left to finish.
func (c *Controller) Close() {
	c.debouncer.Stop()
	c.messages.Clear()
}
