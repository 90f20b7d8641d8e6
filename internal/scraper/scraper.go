// Package scraper turns a public player profile page into a normalized
// player.Record. The pipeline runs in fixed stages: language detection,
// fetch, structural extraction, value parsing, and translation. Only an
// invalid URL or a failed fetch abort the pipeline; any individual field
// that cannot be extracted or parsed is left absent.
package scraper

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/scoutdesk/scoutdesk-data/internal/player"
	"github.com/scoutdesk/scoutdesk-data/internal/translate"
)

// Scraper fetches and normalizes player profiles. It holds a shared HTTP
// client and translator and is safe for concurrent use; every request gets
// its own document and record.
type Scraper struct {
	http       *resty.Client
	translator *translate.Translator
	logger     *slog.Logger
}

// Options configures a Scraper.
type Options struct {
	UserAgent  string
	Timeout    time.Duration
	Translator *translate.Translator
	Logger     *slog.Logger
}

// New creates a Scraper. A nil Translator disables external translation but
// keeps the manual phrase tables.
func New(opts Options) *Scraper {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	translator := opts.Translator
	if translator == nil {
		translator = translate.New(nil, opts.Logger)
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetHeader("Accept", "text/html,application/xhtml+xml")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Scraper{
		http:       client,
		translator: translator,
		logger:     opts.Logger,
	}
}

// NormalizeURL strips the captcha-redirect suffixes some clients append to
// profile URLs before submitting them.
func NormalizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	for _, suffix := range []string{"/fromCaptcha", "/fromCatpcha"} {
		trimmed = strings.TrimSuffix(trimmed, suffix)
	}
	return trimmed
}

// ExtractPlayer fetches the profile page at rawURL and returns the
// normalized record. It returns *InvalidURLError when the URL carries no
// player id and *NetworkError when the page cannot be fetched.
func (s *Scraper) ExtractPlayer(ctx context.Context, rawURL string) (*player.Record, error) {
	rawURL = NormalizeURL(rawURL)

	playerID, ok := ExtractPlayerID(rawURL)
	if !ok {
		return nil, &InvalidURLError{URL: rawURL}
	}
	lang := DetectLanguage(rawURL)

	start := time.Now()
	doc, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	pageURL, _ := url.Parse(rawURL)
	raw := Extract(doc, pageURL)
	rec := s.normalize(ctx, raw, playerID, rawURL, lang)

	if absent := missingFields(rec); len(absent) > 0 {
		s.logger.Debug("fields absent after extraction",
			"player_id", playerID, "fields", strings.Join(absent, ","))
	}
	s.logger.Info("player extracted",
		"player_id", playerID,
		"language", lang,
		"name", rec.Name,
		"duration", time.Since(start).Round(time.Millisecond))
	return rec, nil
}

// missingFields names the core fields a page usually carries but this
// extraction did not yield.
func missingFields(rec *player.Record) []string {
	var absent []string
	if rec.Name == "" {
		absent = append(absent, "name")
	}
	if rec.BirthYear == nil {
		absent = append(absent, "birth_year")
	}
	if rec.HeightCM == nil {
		absent = append(absent, "height_cm")
	}
	if rec.Nationality == "" {
		absent = append(absent, "nationality")
	}
	if rec.Position == "" {
		absent = append(absent, "position")
	}
	if rec.PreferredFoot == "" {
		absent = append(absent, "preferred_foot")
	}
	if rec.MarketValue == nil {
		absent = append(absent, "market_value")
	}
	if rec.CurrentClub == "" {
		absent = append(absent, "current_club")
	}
	return absent
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) (*goquery.Document, error) {
	resp, err := s.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	if resp.StatusCode() != 200 {
		return nil, &NetworkError{URL: rawURL, StatusCode: resp.StatusCode()}
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	return doc, nil
}

// normalize parses and translates the raw field strings into a record.
// Each field is handled independently so one malformed value never poisons
// the rest.
func (s *Scraper) normalize(ctx context.Context, raw RawFields, playerID, rawURL, lang string) *player.Record {
	rec := &player.Record{
		ID:             playerID,
		URL:            rawURL,
		SourceLanguage: lang,
		Name:           raw.Name,
		BirthPlace:     raw.BirthPlace,
		Agent:          raw.AgentText,
		ProfileImage:   raw.ImageURL,
		FieldPositionX: raw.FieldX,
		FieldPositionY: raw.FieldY,
	}

	if n, ok := ParseShirtNumber(raw.ShirtNumberText); ok {
		rec.ShirtNumber = &n
	}

	rec.BirthYear, rec.Age = ParseBirthInfo(raw.BirthText, time.Now().Year())
	if cm, ok := ParseHeight(raw.HeightText); ok {
		rec.HeightCM = &cm
	}
	if kg, ok := ParseWeight(raw.WeightText); ok {
		rec.WeightKG = &kg
	}

	if raw.NationalityText != "" {
		rec.Nationality = s.translator.Text(ctx, raw.NationalityText, lang)
	}
	if raw.ClubText != "" {
		rec.CurrentClub = s.translator.Text(ctx, raw.ClubText, lang)
	}

	if raw.PositionText != "" {
		rec.Position = s.translator.Position(ctx, raw.PositionText, lang)
	}
	if raw.NaturalPositionText != "" {
		rec.NaturalPosition = s.translator.Position(ctx, raw.NaturalPositionText, lang)
	}
	rec.OtherPositions = make([]string, 0, len(raw.OtherPositionTexts))
	for _, text := range raw.OtherPositionTexts {
		if translated := s.translator.Position(ctx, text, lang); translated != "" {
			rec.OtherPositions = append(rec.OtherPositions, translated)
		}
	}
	// Pages without a detail panel fall back to the info-table position.
	if rec.NaturalPosition == "" {
		rec.NaturalPosition = rec.Position
	}

	if raw.FootText != "" {
		rec.PreferredFoot = s.translator.Foot(ctx, raw.FootText, lang)
	}

	if value, ok := ParseMarketValue(raw.MarketValueText); ok {
		rec.MarketValue = &value
	}
	if stamp, ok := ParseUpdateDate(raw.MarketValueText); ok {
		rec.MarketValueUpdated = stamp
	}
	if year, ok := ParseContractYear(raw.ContractText); ok {
		rec.ContractExpiry = year
	}

	return rec
}
