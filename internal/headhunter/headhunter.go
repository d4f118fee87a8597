// Package headhunter fetches resumes and vacancies from the hh.ru API and
// renders them as plain text for the evaluation prompt.
package headhunter

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL    = "https://api.hh.ru"
	userAgent = "spigell/hh-evaluator (spigelly@gmail.com)"
)

type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New returns a client for the public API. An empty agent keeps the default User-Agent.
func New(logger *zap.Logger, token, agent string) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if agent = strings.TrimSpace(agent); agent == "" {
		agent = userAgent
	}

	return &Client{
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: agent,
	}
}
