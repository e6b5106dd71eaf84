package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bizstat/internal/lookup"
	"bizstat/internal/sheet"
)

const (
	msgNoServiceKey = "서버에 서비스 키가 설정되지 않았습니다. 관리자에게 문의하세요."
	msgNoNumbers    = "조회할 사업자 번호를 입력해주세요."
)

// Index shows the input form.
func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Lookup handles the textarea form submit.
func (s *Server) Lookup(c *gin.Context) {
	raw := c.PostForm("business_numbers")
	s.renderLookup(c, raw, lookup.ParseLines(raw))
}

// Upload handles a spreadsheet upload; the first column of the file is
// treated as the identifier list.
func (s *Server) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{"Error": "업로드된 파일이 없습니다."})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		s.log.Errorw("upload open failed", "file", fileHeader.Filename, "error", err)
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{"Error": "파일을 여는 중 오류가 발생했습니다."})
		return
	}
	defer f.Close()

	tokens, err := sheet.ReadIdentifiers(fileHeader.Filename, f)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{"Error": "파일을 읽을 수 없습니다: " + err.Error()})
		return
	}
	ids := lookup.NormalizeAll(tokens)
	// Carry the extracted numbers as textarea content so the results
	// page can re-submit them for export.
	s.renderLookup(c, strings.Join(ids, "\n"), ids)
}

// Export repeats the lookup and streams the records as an .xlsx
// attachment instead of rendering them.
func (s *Server) Export(c *gin.Context) {
	raw := c.PostForm("business_numbers")
	ids := lookup.ParseLines(raw)
	if s.serviceKey == "" {
		c.HTML(http.StatusOK, "index.html", gin.H{"Error": msgNoServiceKey})
		return
	}
	if len(ids) == 0 {
		c.HTML(http.StatusOK, "index.html", gin.H{"Error": msgNoNumbers})
		return
	}

	records, err := s.svc.Lookup(c.Request.Context(), ids)
	if err != nil {
		s.log.Errorw("export lookup failed", "count", len(ids), "error", err)
		c.HTML(http.StatusOK, "results.html", gin.H{"Error": err.Error(), "OriginalInput": raw})
		return
	}

	f, err := sheet.WriteRecords(records)
	if err != nil {
		s.log.Errorw("workbook build failed", "error", err)
		c.String(http.StatusInternalServerError, "엑셀 파일 생성 중 오류가 발생했습니다.")
		return
	}

	filename := "bizstat_" + time.Now().Format("20060102_150405") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		s.log.Errorw("workbook write failed", "error", err)
	}
}

func (s *Server) renderLookup(c *gin.Context, original string, ids []string) {
	if s.serviceKey == "" {
		c.HTML(http.StatusOK, "index.html", gin.H{"Error": msgNoServiceKey})
		return
	}
	if len(ids) == 0 {
		c.HTML(http.StatusOK, "index.html", gin.H{"Error": msgNoNumbers})
		return
	}

	records, err := s.svc.Lookup(c.Request.Context(), ids)
	if err != nil {
		s.log.Errorw("lookup failed", "count", len(ids), "error", err)
		c.HTML(http.StatusOK, "results.html", gin.H{"Error": err.Error(), "OriginalInput": original})
		return
	}

	headers, rows := sheet.Tabulate(records)
	c.HTML(http.StatusOK, "results.html", gin.H{
		"Headers":       headers,
		"Rows":          rows,
		"Count":         len(rows),
		"OriginalInput": original,
	})
}
