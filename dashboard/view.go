package dashboard

import "gitlab.com/aoterocom/ROEAnalyzer/render"

type Section string

const (
	SectionResults Section = "resultsSection"
	SectionChart   Section = "chartSection"
	SectionDetails Section = "detailsSection"
)

// Chart is a live chart instance owned by the controller.
type Chart interface {
	Destroy()
}

// View is everything the controller paints on. Implementations must not call
// back into the controller from these methods.
type View interface {
	MessageView
	SetControlValue(control ControlID, display string)
	ShowLoading(show bool)
	SetSectionVisible(section Section, visible bool)
	SetResultCount(text string)
	RenderTable(rows []render.TableRow)
	CreateChart(spec render.ChartSpec) Chart
	RenderDetails(details render.Details)
}
