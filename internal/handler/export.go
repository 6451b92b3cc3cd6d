package handler

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/hostel-desk/internal/export"
)

// Export formats accepted by ?format=.
const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportRooms handles GET /rooms/export.
// It returns every room of the board, unfiltered and unpaged.
// Use ?format=csv or ?format=xlsx for a download; default is JSON.
func (s *Server) ExportRooms(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		invalidRequest(w, "invalid query parameter format")
		return
	}
	f := formatJSON
	if format != nil && *format != "" {
		f = *format
	}
	if f != formatJSON && f != formatCSV && f != formatXLSX {
		invalidRequest(w, "format must be one of json, csv, xlsx")
		return
	}

	b, err := s.board.LoadAll(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	tiles := b.Tiles()

	switch f {
	case formatCSV:
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, tiles); err != nil {
			s.serviceError(w, r, err)
			return
		}
		writeAttachment(w, "text/csv; charset=utf-8", "quartos.csv", buf.Bytes())
	case formatXLSX:
		data, err := export.XLSX(tiles)
		if err != nil {
			s.serviceError(w, r, err)
			return
		}
		writeAttachment(w, xlsxContentType, "quartos.xlsx", data)
	default:
		writeJSON(w, http.StatusOK, tilesToResponse(tiles))
	}
}

// writeAttachment sends body as a file download named filename.
func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
