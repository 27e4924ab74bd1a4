// Package service is the asynchronous, latency-simulating facade over the
// in-memory store. It is the only writer; handlers and workers go through it.
package service

import (
	"crypto/rand"

	"github.com/amarktai/marketing-backend/internal/store"
)

type Service struct {
	WebApps   *WebAppService
	Platforms *PlatformService
	Content   *ContentService
	Analytics *AnalyticsService
}

func New(st *store.Store, lat Latency) *Service {
	return &Service{
		WebApps:   &WebAppService{st: st, lat: lat},
		Platforms: &PlatformService{st: st, lat: lat},
		Content:   &ContentService{st: st, lat: lat},
		Analytics: &AnalyticsService{st: st, lat: lat},
	}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randBase36(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken; fall back to a
		// constant rather than panic in a mock layer.
		return "0000000000"[:n]
	}
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	return string(b)
}
