package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iscsys/backend-go/internal/domain"
	"github.com/iscsys/backend-go/internal/service"
)

var testNow = time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)

func requestFilter(t *testing.T, query string) domain.ReportFilter {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/reports/overview"+query, nil)

	h := NewReportHandler(nil).WithClock(func() time.Time { return testNow })
	return h.parseFilter(c)
}

func TestNewReportHandler_UsesServiceClock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := service.NewReportService(nil, nil, nil, 7).
		WithClock(func() time.Time { return testNow })
	h := NewReportHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/reports/overview?range=month", nil)

	got := h.parseFilter(c)
	want := domain.ReportFilter{Start: "2025-03-01", End: "2025-03-15"}
	if got != want {
		t.Errorf("parseFilter() = %+v, want the preset resolved on the service clock %+v", got, want)
	}
}

func TestParseFilter_RangePresets(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.ReportFilter
	}{
		{
			name:  "today",
			query: "?range=today",
			want:  domain.ReportFilter{Start: "2025-03-15", End: "2025-03-15"},
		},
		{
			name:  "yesterday",
			query: "?range=yesterday",
			want:  domain.ReportFilter{Start: "2025-03-14", End: "2025-03-14"},
		},
		{
			name:  "week covers seven days inclusive",
			query: "?range=week",
			want:  domain.ReportFilter{Start: "2025-03-09", End: "2025-03-15"},
		},
		{
			name:  "month to date",
			query: "?range=month",
			want:  domain.ReportFilter{Start: "2025-03-01", End: "2025-03-15"},
		},
		{
			name:  "all is unbounded",
			query: "?range=all",
			want:  domain.ReportFilter{},
		},
		{
			name:  "explicit bounds",
			query: "?start=2025-02-01&end=2025-02-28",
			want:  domain.ReportFilter{Start: "2025-02-01", End: "2025-02-28"},
		},
		{
			name:  "preset wins over explicit bounds",
			query: "?range=today&start=2025-01-01",
			want:  domain.ReportFilter{Start: "2025-03-15", End: "2025-03-15"},
		},
		{
			name:  "malformed dates dropped",
			query: "?start=March+1&end=2025-13-99",
			want:  domain.ReportFilter{},
		},
		{
			name:  "no params means unbounded",
			query: "",
			want:  domain.ReportFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requestFilter(t, tt.query)
			if got != tt.want {
				t.Errorf("parseFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
