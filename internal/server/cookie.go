package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStore keeps preferences in request cookies, one cookie per key.
type CookieStore struct {
	c *gin.Context
}

// NewCookieStore binds a store to one request
func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c}
}

func (s *CookieStore) Get(key string) (string, bool, error) {
	value, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *CookieStore) Set(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, true)
	return nil
}
