package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	database "gitlab.com/aoterocom/ROEAnalyzer/database/models"
)

var historyHeader = []string{"시각", "요청 ID", "유형", "조건", "결과", "기업 수", "소요(ms)", "상위 기업"}

// WriteHistory prints stored analysis runs, newest first.
func WriteHistory(out io.Writer, runs []database.AnalysisRun) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "저장된 분석 기록이 없습니다.")
		return
	}

	table := newTable(out, historyHeader)
	for _, run := range runs {
		var top []string
		for _, entry := range run.Entries {
			if len(top) == 3 {
				break
			}
			top = append(top, fmt.Sprintf("%s(%s)", entry.Symbol, entry.Grade))
		}
		outcome := run.Outcome
		if run.Message != "" && run.Outcome != "success" {
			outcome += ": " + run.Message
		}
		table.Append([]string{
			startedAt(run).Format("2006-01-02 15:04:05"),
			run.RequestID,
			run.Trigger,
			fmt.Sprintf("ROE>=%.0f %d년 %d개", run.MinROE, run.Years, run.Limit),
			outcome,
			fmt.Sprint(run.ResultCount),
			fmt.Sprint(run.DurationMs),
			strings.Join(top, " "),
		})
	}
	table.Render()
}

// startedAt falls back to the row creation time for runs stored without it.
func startedAt(run database.AnalysisRun) time.Time {
	if run.StartedAt.IsZero() {
		return run.CreatedAt
	}
	return run.StartedAt
}
