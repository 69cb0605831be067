package handler

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/vineethkumarrao/google-chatbot-backend/internal/domain"
)

// Shared scripted fakes for the handler tests. Handlers are exercised through
// real services wired over these fakes, so each test covers the full
// handler → service → port path.

const testFrontendURL = "https://v0-google-integration-chatbot.vercel.app"

type fakeAuthProvider struct {
	tokens      *domain.TokenBundle
	profile     *domain.UserProfile
	exchangeErr error
	profileErr  error

	gotRedirectURI string
}

func (f *fakeAuthProvider) AuthURL(redirectURI string) string {
	f.gotRedirectURI = redirectURI
	return "https://accounts.google.com/o/oauth2/auth?redirect_uri=" + url.QueryEscape(redirectURI)
}

func (f *fakeAuthProvider) ExchangeCode(_ context.Context, _, redirectURI string) (*domain.TokenBundle, error) {
	f.gotRedirectURI = redirectURI
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return f.tokens, nil
}

func (f *fakeAuthProvider) GetUserProfile(_ context.Context, _ string) (*domain.UserProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

type fakeAIProvider struct {
	response string
	err      error
}

func (f *fakeAIProvider) ModelName() string { return "llama3.1-8b" }

func (f *fakeAIProvider) Chat(_ context.Context, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeMailProvider struct {
	ids     []string
	listErr error

	listCalls int
	getCalls  int
}

func (f *fakeMailProvider) ListMessageIDs(_ context.Context, _ string, _ int64) ([]string, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ids, nil
}

func (f *fakeMailProvider) GetMessage(_ context.Context, _, id string) (*domain.EmailSummary, error) {
	f.getCalls++
	return &domain.EmailSummary{
		ID:      id,
		Subject: "Subject " + id,
		Sender:  "sender@example.com",
		Snippet: "snippet",
	}, nil
}

func newTestApp() *fiber.App {
	return fiber.New()
}
