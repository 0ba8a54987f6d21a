package twitch

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PotterFan92/wizard-duels-backend/internal/duel"
	"github.com/PotterFan92/wizard-duels-backend/internal/leaderboard"
	"github.com/PotterFan92/wizard-duels-backend/internal/platform/config"
	"github.com/PotterFan92/wizard-duels-backend/internal/spell"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-webhook-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := spell.PrimeModule(db); err != nil {
		t.Fatalf("spell.PrimeModule failed: %v", err)
	}
	if err := duel.PrimeModule(db); err != nil {
		t.Fatalf("duel.PrimeModule failed: %v", err)
	}
	if err := leaderboard.PrimeModule(db); err != nil {
		t.Fatalf("leaderboard.PrimeModule failed: %v", err)
	}
	if err := PrimeModule(db); err != nil {
		t.Fatalf("twitch.PrimeModule failed: %v", err)
	}

	stats := leaderboard.NewService(db, nil)
	globalService = duel.NewService(db, stats)
	globalRDB = nil
	globalCfg = config.TwitchConfig{
		WebhookSecret: testSecret,
		RewardTitle:   "Wizard Duel!",
	}

	router := gin.New()
	router.POST("/api/twitch/webhook", HandleWebhook)
	return router, db
}

func signedRequest(t *testing.T, messageID, messageType string, body []byte) *http.Request {
	t.Helper()
	timestamp := "2025-03-01T12:00:00.000Z"

	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	sig := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/twitch/webhook", bytes.NewReader(body))
	req.Header.Set(headerMessageID, messageID)
	req.Header.Set(headerTimestamp, timestamp)
	req.Header.Set(headerSignature, sig)
	req.Header.Set(headerMessageType, messageType)
	return req
}

func countEvents(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&duel.GameEvent{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	return count
}

const redemptionBody = `{
	"subscription": {"id": "sub-1", "type": "channel.channel_points_custom_reward_redemption.add", "status": "enabled"},
	"event": {
		"user_id": "u-viewer",
		"user_login": "viewer",
		"user_name": "Viewer",
		"user_input": "",
		"reward": {"id": "r-1", "title": "Wizard Duel!"}
	}
}`

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	router, db := newTestRouter(t)

	req := signedRequest(t, "msg-1", messageTypeNotification, []byte(redemptionBody))
	req.Header.Set(headerSignature, "sha256=deadbeef")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if got := countEvents(t, db); got != 0 {
		t.Fatalf("no event may be stored after auth failure, got %d", got)
	}
	var entries int64
	if err := db.Model(&leaderboard.Entry{}).Count(&entries).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if entries != 0 {
		t.Fatalf("leaderboard must be untouched after auth failure, got %d entries", entries)
	}
}

func TestWebhookRejectsMissingHeaders(t *testing.T) {
	router, db := newTestRouter(t)

	req := signedRequest(t, "msg-1", messageTypeNotification, []byte(redemptionBody))
	req.Header.Del(headerTimestamp)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if got := countEvents(t, db); got != 0 {
		t.Fatalf("no event may be stored, got %d", got)
	}
}

func TestWebhookEchoesChallenge(t *testing.T) {
	router, _ := newTestRouter(t)

	body := []byte(`{"challenge": "tok-12345", "subscription": {"id": "sub-1", "type": "channel.channel_points_custom_reward_redemption.add"}}`)
	req := signedRequest(t, "msg-verify", messageTypeVerification, body)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "tok-12345" {
		t.Fatalf("challenge must be echoed verbatim, got %q", w.Body.String())
	}
}

func TestWebhookProcessesRedemption(t *testing.T) {
	router, db := newTestRouter(t)

	req := signedRequest(t, "msg-1", messageTypeNotification, []byte(redemptionBody))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := countEvents(t, db); got != 1 {
		t.Fatalf("expected 1 stored event, got %d", got)
	}

	event, err := duel.LatestEvent(db)
	if err != nil {
		t.Fatalf("LatestEvent failed: %v", err)
	}
	if event.CasterID != "u-viewer" || event.CasterName != "Viewer" {
		t.Fatalf("unexpected caster: %+v", event)
	}
	// No user input means no resolvable target
	if event.TargetID != "" {
		t.Fatalf("expected empty target id, got %q", event.TargetID)
	}
	if event.TargetName != duel.HostTargetName {
		t.Fatalf("expected sentinel target, got %q", event.TargetName)
	}

	entry, err := leaderboard.GetEntry(db, "u-viewer")
	if err != nil {
		t.Fatalf("caster entry missing: %v", err)
	}
	if entry.Casts != 1 {
		t.Fatalf("expected casts=1, got %+v", entry)
	}
}

// TestWebhookReplayIsIdempotent verifies that redelivery of the same
// message id never double-counts a duel.
func TestWebhookReplayIsIdempotent(t *testing.T) {
	router, db := newTestRouter(t)

	for i := 0; i < 3; i++ {
		req := signedRequest(t, "msg-replayed", messageTypeNotification, []byte(redemptionBody))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("delivery %d: expected 204, got %d", i, w.Code)
		}
	}

	if got := countEvents(t, db); got != 1 {
		t.Fatalf("replayed message must record exactly one event, got %d", got)
	}
	entry, err := leaderboard.GetEntry(db, "u-viewer")
	if err != nil {
		t.Fatalf("caster entry missing: %v", err)
	}
	if entry.Casts != 1 {
		t.Fatalf("replay double-counted: %+v", entry)
	}
}

func TestWebhookIgnoresOtherRewards(t *testing.T) {
	router, db := newTestRouter(t)

	body := []byte(`{
		"subscription": {"id": "sub-1", "type": "channel.channel_points_custom_reward_redemption.add"},
		"event": {"user_id": "u-viewer", "user_name": "Viewer", "user_input": "", "reward": {"id": "r-2", "title": "Hydrate!"}}
	}`)
	req := signedRequest(t, "msg-other", messageTypeNotification, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := countEvents(t, db); got != 0 {
		t.Fatalf("other rewards must not trigger duels, got %d events", got)
	}
}

func TestWebhookIgnoresOtherSubscriptionTypes(t *testing.T) {
	router, db := newTestRouter(t)

	body := []byte(`{"subscription": {"id": "sub-2", "type": "stream.online"}, "event": {}}`)
	req := signedRequest(t, "msg-online", messageTypeNotification, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := countEvents(t, db); got != 0 {
		t.Fatalf("unexpected events: %d", got)
	}
}

func TestWebhookTargetFromUserInput(t *testing.T) {
	router, db := newTestRouter(t)

	body := []byte(`{
		"subscription": {"id": "sub-1", "type": "channel.channel_points_custom_reward_redemption.add"},
		"event": {"user_id": "u-viewer", "user_name": "Viewer", "user_input": "  Rival  ", "reward": {"id": "r-1", "title": "Wizard Duel!"}}
	}`)
	req := signedRequest(t, "msg-target", messageTypeNotification, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	event, err := duel.LatestEvent(db)
	if err != nil {
		t.Fatalf("LatestEvent failed: %v", err)
	}
	if event.TargetName != "Rival" {
		t.Fatalf("expected trimmed free-text target, got %q", event.TargetName)
	}
	if event.TargetID != "" {
		t.Fatalf("free-text target must not carry an id, got %q", event.TargetID)
	}
}

func TestWebhookRevocationAcknowledged(t *testing.T) {
	router, db := newTestRouter(t)

	body := []byte(`{"subscription": {"id": "sub-1", "type": "channel.channel_points_custom_reward_redemption.add", "status": "authorization_revoked"}}`)
	req := signedRequest(t, "msg-revoke", messageTypeRevocation, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := countEvents(t, db); got != 0 {
		t.Fatalf("revocation must not create events, got %d", got)
	}
}
