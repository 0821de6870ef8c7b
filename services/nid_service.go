package services

import (
	"context"
	"time"

	"vaccinehub.app/configs"
	"vaccinehub.app/pkg/nidregistry"
)

// INIDService sahte NID sorgulama servisi.
type INIDService interface {
	Lookup(ctx context.Context, nid string) (*nidregistry.Profile, error)
}

// NIDService gerçek bir kayıt sistemini taklit eder: geçerli numaralar için
// yapay gecikmeden sonra deterministik bir profil üretir.
type NIDService struct {
	delay time.Duration
	now   func() time.Time
}

// NewNIDService gecikmeyi NID_LOOKUP_DELAY ayarından alır.
func NewNIDService() INIDService {
	return NewNIDServiceWithDelay(configs.Get().NIDLookupDelay)
}

func NewNIDServiceWithDelay(delay time.Duration) *NIDService {
	return &NIDService{delay: delay, now: time.Now}
}

// Lookup önce numarayı doğrular; geçersiz girdi gecikme beklemeden döner.
// Bekleme sırasında context iptal edilirse ctx.Err() döner.
func (s *NIDService) Lookup(ctx context.Context, nid string) (*nidregistry.Profile, error) {
	if err := nidregistry.Validate(nid); err != nil {
		return nil, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	profile := nidregistry.Generate(nid, s.now())
	return &profile, nil
}

var _ INIDService = (*NIDService)(nil)
