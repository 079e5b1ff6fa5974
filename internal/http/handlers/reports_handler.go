package handlers

import (
	"net/http"

	intconfig "flextrack/internal/config"
	"flextrack/internal/http/middleware"
	"flextrack/internal/services"
	"flextrack/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func reportService(c *gin.Context) services.ReportService {
	return services.ReportService{
		Locale:    utils.LocaleFor(intconfig.LoadEnv().ReportLocale),
		RequestID: middleware.GetRequestID(c),
	}
}

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{RequestID: middleware.GetRequestID(c)}
}

func reportFilter(c *gin.Context) services.ReportFilter {
	return services.ReportFilter{Start: c.Query("start"), End: c.Query("end")}
}

func sendAttachment(c *gin.Context, data []byte, filename, mime string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, mime, data)
}

// GET /api/reports?start=&end=
func GetShiftReport(c *gin.Context) {
	rep, err := reportService(c).ShiftReport(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/reports/csv
func GetShiftReportCSV(c *gin.Context) {
	t, err := reportService(c).ShiftTable(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := exportService(c).CSV(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, data, filename, mimeCSV)
}

// GET /api/reports/pdf
func GetShiftReportPDF(c *gin.Context) {
	t, err := reportService(c).ShiftTable(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := exportService(c).PDF(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, data, filename, mimePDF)
}

// GET /api/reports/xlsx
func GetShiftReportXLSX(c *gin.Context) {
	t, err := reportService(c).ShiftTable(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := exportService(c).XLSX(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, data, filename, mimeXLSX)
}

// GET /api/reports/agenda?start=&end=
func GetScheduleReport(c *gin.Context) {
	rep, err := reportService(c).ScheduleReport(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// GET /api/reports/agenda/csv
func GetScheduleReportCSV(c *gin.Context) {
	t, err := reportService(c).ScheduleTable(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := exportService(c).CSV(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, data, filename, mimeCSV)
}

// GET /api/reports/agenda/pdf
func GetScheduleReportPDF(c *gin.Context) {
	t, err := reportService(c).ScheduleTable(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := exportService(c).PDF(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, data, filename, mimePDF)
}

// GET /api/reports/agenda/xlsx
func GetScheduleReportXLSX(c *gin.Context) {
	t, err := reportService(c).ScheduleTable(reportFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := exportService(c).XLSX(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, data, filename, mimeXLSX)
}
