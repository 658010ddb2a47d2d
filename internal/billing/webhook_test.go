package billing

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

type fakeProfiles struct {
	byEmail map[string]*entity.Profile
	tiers   map[uuid.UUID]string
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	if p, ok := f.byEmail[email]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("profile %s: %w", email, common.ErrNotFound)
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			cp := *p
			if t, ok := f.tiers[id]; ok {
				cp.SubscriptionTier = t
			}
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
}

func (f *fakeProfiles) SetTier(_ context.Context, id uuid.UUID, tier string) error {
	if f.tiers == nil {
		f.tiers = map[uuid.UUID]string{}
	}
	f.tiers[id] = tier
	return nil
}

type fakeSubs struct {
	upserts []*entity.Subscription
}

func (f *fakeSubs) UpsertByEmail(_ context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	f.upserts = append(f.upserts, sub)
	return sub, nil
}

type fakeTiers struct {
	byName map[string]*entity.SubscriptionTier
}

func (f *fakeTiers) GetByName(_ context.Context, name string) (*entity.SubscriptionTier, error) {
	if t, ok := f.byName[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("tier %s: %w", name, common.ErrNotFound)
}

const proPrice = "price_pro_monthly"

func newTestWebhook(profiles *fakeProfiles, subs *fakeSubs) (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	svc := NewService(profiles, subs, &fakeTiers{}, proPrice, nil)
	r := gin.New()
	NewWebhook(svc, nil).Register(r)
	return r, svc
}

func postEvent(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/billing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookRewritesTier(t *testing.T) {
	profile := &entity.Profile{ID: uuid.New(), Email: "a@example.com", SubscriptionTier: string(constants.TierFree)}
	profiles := &fakeProfiles{byEmail: map[string]*entity.Profile{profile.Email: profile}}
	subs := &fakeSubs{}
	r, _ := newTestWebhook(profiles, subs)

	tests := []struct {
		name     string
		body     string
		wantTier string
	}{
		{
			name:     "active at pro price",
			body:     `{"type":"subscription.created","customer_email":"a@example.com","price_id":"` + proPrice + `","status":"active"}`,
			wantTier: string(constants.TierPro),
		},
		{
			name:     "active at another price",
			body:     `{"type":"subscription.updated","customer_email":"a@example.com","price_id":"price_big","status":"active"}`,
			wantTier: string(constants.TierEnterprise),
		},
		{
			name:     "past due",
			body:     `{"type":"subscription.updated","customer_email":"a@example.com","price_id":"` + proPrice + `","status":"past_due"}`,
			wantTier: string(constants.TierFree),
		},
		{
			name:     "deleted",
			body:     `{"type":"subscription.deleted","customer_email":"a@example.com","price_id":"` + proPrice + `","status":"active"}`,
			wantTier: string(constants.TierFree),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postEvent(t, r, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.wantTier, profiles.tiers[profile.ID])
		})
	}
	assert.Len(t, subs.upserts, 4)
}

func TestWebhookUnknownCustomerAcknowledged(t *testing.T) {
	r, _ := newTestWebhook(&fakeProfiles{byEmail: map[string]*entity.Profile{}}, &fakeSubs{})

	w := postEvent(t, r, `{"type":"subscription.created","customer_email":"ghost@example.com","status":"active"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestWebhookMalformedPayload(t *testing.T) {
	r, _ := newTestWebhook(&fakeProfiles{}, &fakeSubs{})

	w := postEvent(t, r, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookMissingEmail(t *testing.T) {
	r, _ := newTestWebhook(&fakeProfiles{}, &fakeSubs{})

	w := postEvent(t, r, `{"type":"subscription.created","status":"active"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCapabilitiesReReadTier(t *testing.T) {
	profile := &entity.Profile{ID: uuid.New(), Email: "a@example.com", SubscriptionTier: string(constants.TierFree)}
	profiles := &fakeProfiles{byEmail: map[string]*entity.Profile{profile.Email: profile}}
	r, svc := newTestWebhook(profiles, &fakeSubs{})

	caps, err := svc.Capabilities(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.False(t, caps.CanMerge)
	assert.False(t, caps.ExportFormats)

	// Upgrade arrives via webhook; the next gating decision must see it
	// without any cache refresh step.
	w := postEvent(t, r, `{"type":"subscription.created","customer_email":"a@example.com","price_id":"`+proPrice+`","status":"active"}`)
	require.Equal(t, http.StatusOK, w.Code)

	caps, err = svc.Capabilities(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.TierPro), caps.Tier)
	assert.True(t, caps.CanMerge)
	assert.True(t, caps.ExportFormats)
}

func TestCapabilitiesFromTierRow(t *testing.T) {
	profile := &entity.Profile{ID: uuid.New(), Email: "a@example.com", SubscriptionTier: string(constants.TierPro)}
	profiles := &fakeProfiles{byEmail: map[string]*entity.Profile{profile.Email: profile}}
	tiers := &fakeTiers{byName: map[string]*entity.SubscriptionTier{
		string(constants.TierPro): {
			Name:               string(constants.TierPro),
			MonthlyExportLimit: 100,
			FileSizeLimitMB:    25,
			Features:           []string{FeatureMerge},
		},
	}}
	svc := NewService(profiles, &fakeSubs{}, tiers, proPrice, nil)

	caps, err := svc.Capabilities(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.True(t, caps.CanMerge)
	assert.False(t, caps.ExportFormats, "feature not listed on the tier row")
	assert.Equal(t, 100, caps.MonthlyExportLimit)
	assert.Equal(t, 25, caps.FileSizeLimitMB)
}
