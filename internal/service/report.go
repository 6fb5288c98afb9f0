package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"loyaltyapi/internal/model"
	"loyaltyapi/internal/repository"
	"loyaltyapi/internal/storage"
)

// ContentTypeXLSX is sent with loyalty report downloads.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	defaultWindowDays = 30
	reportDateLayout  = "20060102"
)

// DefaultLoyaltyThreshold is the amount a client's window total must exceed.
var DefaultLoyaltyThreshold = decimal.NewFromInt(5_000_000)

// LoyalCustomer is one row of the loyalty report.
type LoyalCustomer struct {
	ClientID         int64
	DocumentType     string
	DocumentTypeName string
	DocumentNumber   string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Total            decimal.Decimal
}

// ReportService defines the loyalty report use case.
type ReportService interface {
	// LoyaltyReport builds a spreadsheet of the clients whose purchases in the trailing
	// window add up to more than the loyalty threshold, largest total first.
	LoyaltyReport(ctx context.Context) (*ExportFile, error)
}

// ReportOption customizes a ReportService.
type ReportOption func(*reportService)

// WithThreshold overrides DefaultLoyaltyThreshold.
func WithThreshold(d decimal.Decimal) ReportOption {
	return func(s *reportService) { s.threshold = d }
}

// WithWindowDays sets the number of days before today the report looks back.
func WithWindowDays(days int) ReportOption {
	return func(s *reportService) {
		if days > 0 {
			s.windowDays = days
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ReportOption {
	return func(s *reportService) { s.now = now }
}

// WithArchive uploads every generated report under prefix. A nil store disables archiving.
func WithArchive(store storage.Storage, prefix string) ReportOption {
	return func(s *reportService) {
		s.store = store
		s.archivePrefix = prefix
	}
}

// WithLogger sets the logger used for archive outcomes.
func WithLogger(log zerolog.Logger) ReportOption {
	return func(s *reportService) { s.log = log }
}

type reportService struct {
	purchases     repository.PurchaseRepository
	threshold     decimal.Decimal
	windowDays    int
	now           func() time.Time
	store         storage.Storage
	archivePrefix string
	log           zerolog.Logger
}

// NewReportService constructs a new ReportService.
func NewReportService(purchases repository.PurchaseRepository, opts ...ReportOption) ReportService {
	s := &reportService{
		purchases:  purchases,
		threshold:  DefaultLoyaltyThreshold,
		windowDays: defaultWindowDays,
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reportService) LoyaltyReport(ctx context.Context) (*ExportFile, error) {
	now := s.now().UTC()
	since := windowStart(now, s.windowDays)

	purchases, err := s.purchases.FindSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("find purchases since %s: %w", since.Format(time.DateOnly), err)
	}
	if len(purchases) == 0 {
		return nil, ErrNoPurchasesInWindow
	}

	loyal := aggregateLoyal(purchases, s.threshold)
	if len(loyal) == 0 {
		return nil, ErrNoQualifyingClients
	}

	content, err := renderLoyaltyXLSX(loyal)
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}

	file := &ExportFile{
		Filename:    "reporte_fidelizacion_" + now.Format(reportDateLayout) + ".xlsx",
		ContentType: ContentTypeXLSX,
		Content:     content,
	}

	s.archive(ctx, file, len(loyal), now)
	return file, nil
}

// archive stores a copy of the report. Failures are logged and never reach the caller.
func (s *reportService) archive(ctx context.Context, file *ExportFile, clients int, generatedAt time.Time) {
	if s.store == nil {
		return
	}

	key := path.Join(s.archivePrefix, file.Filename)
	info, err := s.store.Put(ctx, key, bytes.NewReader(file.Content), storage.PutObjectOptions{
		Size:        int64(len(file.Content)),
		ContentType: file.ContentType,
		Metadata: map[string]string{
			"generated-at": generatedAt.Format(time.RFC3339),
			"clients":      strconv.Itoa(clients),
		},
	})
	if err != nil {
		s.log.Warn().Err(err).Str("event", "report_archive_failed").Str("key", key).Msg("could not archive loyalty report")
		return
	}
	s.log.Info().Str("event", "report_archived").Str("key", key).Str("etag", info.ETag).Int64("size", info.Size).Msg("loyalty report archived")
}

// windowStart returns midnight UTC of the day windowDays before now.
func windowStart(now time.Time, windowDays int) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -windowDays)
}

// aggregateLoyal sums purchases per client and keeps the clients whose total is strictly
// greater than threshold, ordered by total descending. Ties keep first-seen order.
func aggregateLoyal(purchases []model.Purchase, threshold decimal.Decimal) []LoyalCustomer {
	index := make(map[int64]int)
	var all []LoyalCustomer

	for _, p := range purchases {
		i, ok := index[p.ClientID]
		if !ok {
			i = len(all)
			index[p.ClientID] = i
			all = append(all, newLoyalCustomer(p))
		}
		all[i].Total = all[i].Total.Add(p.Amount)
	}

	loyal := make([]LoyalCustomer, 0, len(all))
	for _, c := range all {
		if c.Total.GreaterThan(threshold) {
			loyal = append(loyal, c)
		}
	}

	sort.SliceStable(loyal, func(i, j int) bool {
		return loyal[i].Total.GreaterThan(loyal[j].Total)
	})
	return loyal
}

func newLoyalCustomer(p model.Purchase) LoyalCustomer {
	lc := LoyalCustomer{ClientID: p.ClientID, Total: decimal.Zero}
	if c := p.Client; c != nil {
		lc.DocumentType = c.DocumentType.Code
		lc.DocumentTypeName = c.DocumentType.Name
		lc.DocumentNumber = c.DocumentNumber
		lc.FirstName = c.FirstName
		lc.LastName = c.LastName
		lc.Email = c.Email
		lc.Phone = c.Phone
	}
	return lc
}
