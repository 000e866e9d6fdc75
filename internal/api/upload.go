package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/report"
	"github.com/Veraticus/gastx/internal/statement"
)

// HandleUploadCSV accepts a multipart "file" field holding a CSV statement
// and answers with the classified report.
func (s *Server) HandleUploadCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendErr(w, r, err)
			return
		}
		SendError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "missing multipart field \"file\"")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		SendError(w, http.StatusBadRequest, ErrCodeUnsupportedFormat, "only CSV files are accepted")
		return
	}

	stmt, err := statement.ParseCSV(file)
	if err != nil {
		sendErr(w, r, common.NewUserError("failed to process file", err))
		return
	}

	upload, err := report.Build(r.Context(), s.engine, stmt)
	if err != nil {
		sendErr(w, r, err)
		return
	}

	common.LogDebug("Processed CSV upload", common.Fields{
		"file":         header.Filename,
		"bank":         stmt.Bank,
		"transactions": upload.TotalTransactions,
	})
	SendJSON(w, http.StatusOK, upload)
}
