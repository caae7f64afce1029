package server

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/tartampluch/go-nextbirthday/internal/config"
	"github.com/tartampluch/go-nextbirthday/internal/engine"
	"github.com/tartampluch/go-nextbirthday/internal/i18n"
)

// birthdayResponse is the public countdown contract.
type birthdayResponse struct {
	InputDOB              string `json:"inputDob"`
	AgeYears              int    `json:"ageYears"`
	NextBirthdayDate      string `json:"nextBirthdayDate"`
	NextBirthdayDayOfWeek string `json:"nextBirthdayDayOfWeek"`
	DaysUntilNextBirthday int    `json:"daysUntilNextBirthday"`
	Message               string `json:"message"`
}

type ageResponse struct {
	InputDOB    string `json:"inputDob"`
	CurrentDate string `json:"currentDate"`
	AgeYears    int    `json:"ageYears"`
	AgeMonths   int    `json:"ageMonths"`
	AgeDays     int    `json:"ageDays"`
	Message     string `json:"message"`
}

type vcardContact struct {
	Name                  string `json:"name,omitempty"`
	DOB                   string `json:"dob"`
	YearKnown             bool   `json:"yearKnown"`
	AgeYears              *int   `json:"ageYears,omitempty"`
	NextBirthdayDate      string `json:"nextBirthdayDate"`
	NextBirthdayDayOfWeek string `json:"nextBirthdayDayOfWeek"`
	DaysUntilNextBirthday int    `json:"daysUntilNextBirthday"`
	Message               string `json:"message"`
}

type vcardScanResponse struct {
	Scanned  int            `json:"scanned"`
	Matched  int            `json:"matched"`
	Contacts []vcardContact `json:"contacts"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Example string `json:"example"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message, Example: config.ExampleUsage})
}

// messages builds a per-request renderer from the Accept-Language header.
func (s *Server) messages(r *http.Request) *i18n.Messages {
	return i18n.NewMessages(s.bundle, r.Header.Get(config.HeaderAcceptLanguage), config.DefaultLanguage)
}

func (s *Server) handleNextBirthday(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(config.ParamDOB)
	today := engine.Today(s.clock)

	dob, verr := engine.ValidateDOB(raw, today)
	if verr != nil {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	res := engine.Compute(dob, today)
	writeJSON(w, http.StatusOK, birthdayResponse{
		InputDOB:              raw,
		AgeYears:              res.AgeYears,
		NextBirthdayDate:      res.NextBirthday.String(),
		NextBirthdayDayOfWeek: res.Weekday.String(),
		DaysUntilNextBirthday: res.DaysUntil,
		Message:               s.messages(r).Render(res.Tier, res.DaysUntil),
	})
}

func (s *Server) handleNextBirthdayICS(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(config.ParamDOB)
	today := engine.Today(s.clock)

	dob, verr := engine.ValidateDOB(raw, today)
	if verr != nil {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	ics, err := engine.NextBirthdayICS(engine.Compute(dob, today))
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		writeError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	if _, err := w.Write(ics); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func (s *Server) handleAge(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(config.ParamDOB)
	today := engine.Today(s.clock)

	dob, verr := engine.ValidateDOB(raw, today)
	if verr != nil {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	years, months, days := engine.AgeBreakdown(dob, today)
	writeJSON(w, http.StatusOK, ageResponse{
		InputDOB:    raw,
		CurrentDate: today.String(),
		AgeYears:    years,
		AgeMonths:   months,
		AgeDays:     days,
		Message:     s.messages(r).RenderAge(years),
	})
}

func (s *Server) handleVCardScan(w http.ResponseWriter, r *http.Request) {
	today := engine.Today(s.clock)
	body := http.MaxBytesReader(w, r.Body, config.MaxVCardBodySize)

	scanned, entries, err := engine.ScanVCards(body, today)
	if err != nil {
		writeError(w, http.StatusBadRequest, config.ErrVCardParse)
		return
	}

	msgs := s.messages(r)
	contacts := make([]vcardContact, 0, len(entries))
	for _, e := range entries {
		c := vcardContact{
			Name:                  e.Name,
			DOB:                   e.Birth.String(),
			YearKnown:             e.YearKnown,
			NextBirthdayDate:      e.Result.NextBirthday.String(),
			NextBirthdayDayOfWeek: e.Result.Weekday.String(),
			DaysUntilNextBirthday: e.Result.DaysUntil,
			Message:               msgs.Render(e.Result.Tier, e.Result.DaysUntil),
		}
		if e.YearKnown {
			age := e.Result.AgeYears
			c.AgeYears = &age
		}
		contacts = append(contacts, c)
	}

	slog.Debug(config.MsgScanDone,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyScanned, scanned,
		config.LogKeyMatched, len(contacts),
	)
	writeJSON(w, http.StatusOK, vcardScanResponse{
		Scanned:  scanned,
		Matched:  len(contacts),
		Contacts: contacts,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: config.HTTPStatusOK})
}
