package verify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"agrisync-backend/domain"
	"agrisync-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeVerifyRepository struct {
	mu         sync.Mutex
	batches    map[uuid.UUID]*entities.Batch
	scanErr    error
	scans      []*entities.QRScan
	totalScans int64
	daily      []domain.DailyScanCount
}

func newFakeVerifyRepository(batches ...*entities.Batch) *fakeVerifyRepository {
	f := &fakeVerifyRepository{batches: make(map[uuid.UUID]*entities.Batch)}
	for _, b := range batches {
		f.batches[b.ID] = b
	}
	return f
}

func (f *fakeVerifyRepository) GetBatchWithProducer(ctx context.Context, batchID uuid.UUID) (*entities.Batch, error) {
	b, ok := f.batches[batchID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (f *fakeVerifyRepository) RecordScan(ctx context.Context, scan *entities.QRScan) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans = append(f.scans, scan)
	return nil
}

func (f *fakeVerifyRepository) CountScansByBatch(ctx context.Context, batchID uuid.UUID) (int64, error) {
	return f.totalScans, nil
}

func (f *fakeVerifyRepository) ListDailyScanCounts(ctx context.Context, batchID uuid.UUID) ([]domain.DailyScanCount, error) {
	return f.daily, nil
}

func (f *fakeVerifyRepository) recordedScans() []*entities.QRScan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.QRScan(nil), f.scans...)
}

type fakeBatchRepository struct {
	mu         sync.Mutex
	events     []*entities.Event
	certs      []*entities.Certification
	eventOrder string
}

func (f *fakeBatchRepository) CreateBatch(ctx context.Context, batch *entities.Batch) error {
	return nil
}

func (f *fakeBatchRepository) GetBatchByIDAndProducer(ctx context.Context, id, producerID uuid.UUID) (*entities.Batch, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBatchRepository) GetBatchesByProducer(ctx context.Context, producerID uuid.UUID) ([]*entities.Batch, error) {
	return nil, nil
}

func (f *fakeBatchRepository) GetMarketplaceBatches(ctx context.Context) ([]*entities.Batch, error) {
	return nil, nil
}

func (f *fakeBatchRepository) AppendEvent(ctx context.Context, event *entities.Event) error {
	return nil
}

func (f *fakeBatchRepository) ListEventsByBatch(ctx context.Context, batchID uuid.UUID, order string) ([]*entities.Event, error) {
	f.mu.Lock()
	f.eventOrder = order
	f.mu.Unlock()

	var out []*entities.Event
	for _, e := range f.events {
		if e.BatchID == batchID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeBatchRepository) AppendCertification(ctx context.Context, cert *entities.Certification) error {
	return nil
}

func (f *fakeBatchRepository) ListCertificationsByBatch(ctx context.Context, batchID uuid.UUID) ([]*entities.Certification, error) {
	var out []*entities.Certification
	for _, c := range f.certs {
		if c.BatchID == batchID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeBatchRepository) lastEventOrder() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.eventOrder
}

func testBatch() *entities.Batch {
	return &entities.Batch{
		ID:          uuid.New(),
		ProducerID:  uuid.New(),
		ProductName: "Alphonso Mangoes",
		ProductType: "fruit",
		Quantity:    120,
		Unit:        "kg",
		Location:    "Ratnagiri",
		Producer: &entities.User{
			Username:     "ravi",
			Organization: "Konkan Farms",
			Phone:        "+919876543210",
		},
	}
}

func TestVerifyUnknownBatch(t *testing.T) {
	verifyRepo := newFakeVerifyRepository()
	service := NewVerifyService(verifyRepo, &fakeBatchRepository{})

	_, err := service.Verify(context.Background(), uuid.New().String(), "203.0.113.7")
	if !errors.Is(err, domain.ErrBatchNotFound) {
		t.Fatalf("expected ErrBatchNotFound, got %v", err)
	}
	if len(verifyRepo.recordedScans()) != 0 {
		t.Fatalf("scan recorded for unknown batch: %d scans", len(verifyRepo.recordedScans()))
	}
}

func TestVerifyMalformedBatchID(t *testing.T) {
	service := NewVerifyService(newFakeVerifyRepository(), &fakeBatchRepository{})

	_, err := service.Verify(context.Background(), "not-a-uuid", "203.0.113.7")
	if !errors.Is(err, domain.ErrBatchNotFound) {
		t.Fatalf("expected ErrBatchNotFound for malformed id, got %v", err)
	}
}

func TestVerifyRecordsScanAndScores(t *testing.T) {
	b := testBatch()
	verifyRepo := newFakeVerifyRepository(b)
	batchRepo := &fakeBatchRepository{
		events: []*entities.Event{
			{ID: uuid.New(), BatchID: b.ID, EventType: "harvest", PhotoURL: "https://example.com/p.jpg"},
			{ID: uuid.New(), BatchID: b.ID, EventType: "transport"},
		},
		certs: []*entities.Certification{
			{ID: uuid.New(), BatchID: b.ID, CertType: "organic", Issuer: "APEDA"},
		},
	}
	service := NewVerifyService(verifyRepo, batchRepo)

	res, err := service.Verify(context.Background(), b.ID.String(), "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50 base + 2 events + 1 photo + 1 cert
	if res.TrustScore != 75 {
		t.Fatalf("trust score = %d, want 75", res.TrustScore)
	}
	if batchRepo.lastEventOrder() != "asc" {
		t.Fatalf("verification read events in %q order, want asc", batchRepo.lastEventOrder())
	}
	scans := verifyRepo.recordedScans()
	if len(scans) != 1 {
		t.Fatalf("recorded %d scans, want 1", len(scans))
	}
	if scans[0].ScannerIP != "203.0.113.7" {
		t.Fatalf("scanner ip = %q", scans[0].ScannerIP)
	}
	if res.Producer.Name != "ravi" || res.Producer.Organization != "Konkan Farms" {
		t.Fatalf("producer = %+v", res.Producer)
	}
	if len(res.Events) != 2 || len(res.Certifications) != 1 {
		t.Fatalf("events = %d, certifications = %d", len(res.Events), len(res.Certifications))
	}
	if res.VerifiedAt.IsZero() {
		t.Fatal("verified_at not set")
	}
}

func TestVerifyConcurrentScans(t *testing.T) {
	b := testBatch()
	verifyRepo := newFakeVerifyRepository(b)
	service := NewVerifyService(verifyRepo, &fakeBatchRepository{})

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Verify(context.Background(), b.ID.String(), "203.0.113.7")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent verification failed: %v", err)
		}
	}
	if scans := verifyRepo.recordedScans(); len(scans) != 2 {
		t.Fatalf("recorded %d scans, want exactly 2", len(scans))
	}
}

func TestVerifyScopedToRequestedBatch(t *testing.T) {
	first := testBatch()
	second := testBatch()
	verifyRepo := newFakeVerifyRepository(first, second)
	batchRepo := &fakeBatchRepository{
		events: []*entities.Event{
			{ID: uuid.New(), BatchID: first.ID, EventType: "harvest"},
			{ID: uuid.New(), BatchID: second.ID, EventType: "harvest"},
			{ID: uuid.New(), BatchID: second.ID, EventType: "transport"},
		},
		certs: []*entities.Certification{
			{ID: uuid.New(), BatchID: second.ID, CertType: "organic", Issuer: "APEDA"},
		},
	}
	service := NewVerifyService(verifyRepo, batchRepo)

	res, err := service.Verify(context.Background(), first.ID.String(), "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Events) != 1 || len(res.Certifications) != 0 {
		t.Fatalf("first batch got %d events and %d certifications, want 1 and 0",
			len(res.Events), len(res.Certifications))
	}
	for _, e := range res.Events {
		if e.BatchID != first.ID.String() {
			t.Fatalf("event %s belongs to batch %s, not the requested %s", e.ID, e.BatchID, first.ID)
		}
	}

	res, err = service.Verify(context.Background(), second.ID.String(), "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Events) != 2 || len(res.Certifications) != 1 {
		t.Fatalf("second batch got %d events and %d certifications, want 2 and 1",
			len(res.Events), len(res.Certifications))
	}
	for _, e := range res.Events {
		if e.BatchID != second.ID.String() {
			t.Fatalf("event %s belongs to batch %s, not the requested %s", e.ID, e.BatchID, second.ID)
		}
	}
	if res.Certifications[0].BatchID != second.ID.String() {
		t.Fatalf("certification belongs to batch %s, not the requested %s",
			res.Certifications[0].BatchID, second.ID)
	}
}

func TestVerifySurvivesScanFailure(t *testing.T) {
	b := testBatch()
	verifyRepo := newFakeVerifyRepository(b)
	verifyRepo.scanErr = errors.New("insert failed")
	service := NewVerifyService(verifyRepo, &fakeBatchRepository{})

	res, err := service.Verify(context.Background(), b.ID.String(), "203.0.113.7")
	if err != nil {
		t.Fatalf("scan failure leaked into verification: %v", err)
	}
	if res.TrustScore != 50 {
		t.Fatalf("trust score = %d, want 50", res.TrustScore)
	}
}

func TestGetScanAnalytics(t *testing.T) {
	verifyRepo := newFakeVerifyRepository()
	verifyRepo.totalScans = 12
	verifyRepo.daily = []domain.DailyScanCount{
		{ScanDate: "2026-08-30", TotalScans: 8},
		{ScanDate: "2026-08-29", TotalScans: 4},
	}
	service := NewVerifyService(verifyRepo, &fakeBatchRepository{})

	res, err := service.GetScanAnalytics(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalScans != 12 || len(res.DailyScans) != 2 {
		t.Fatalf("analytics = %+v", res)
	}
}
