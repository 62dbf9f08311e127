package rest

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mec-canteen/canteen/internal/adapters/store/model"
)

func (s *Server) Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := s.checkAuth(c)
		if err != nil {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			c.Abort()
		}

		c.Next()
	}
}

// AdminOnly checks the authenticated account's stored role, not the token.
func (s *Server) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := s.checkAuth(c)
		if err != nil {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			c.Abort()
			return
		}

		user, err := s.service.GetUser(c.Request.Context(), userID)
		if err != nil {
			s.log.Error("failed get user for role check", zap.Error(err))
			c.Writer.WriteHeader(http.StatusInternalServerError)
			c.Abort()
			return
		}

		if user.Role != model.RoleAdmin {
			c.Writer.WriteHeader(http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (s *Server) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info(
			"Request",
			zap.String("uri", c.Request.RequestURI),
			zap.Duration("duration", time.Since(start)),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
		)
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	ips map[string]*visitor
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func newIPRateLimiter(r rate.Limit, b int) *ipRateLimiter {
	l := &ipRateLimiter{
		ips: make(map[string]*visitor),
		r:   r,
		b:   b,
	}
	go l.cleanupVisitors()

	return l
}

func (l *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(l.r, l.b)
		l.ips[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (l *ipRateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for ip, v := range l.ips {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.ips, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (s *Server) RateLimit() gin.HandlerFunc {
	var limiter *ipRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		once.Do(func() {
			limiter = newIPRateLimiter(rate.Limit(s.rateRPS), s.rateBurst)
		})
		if !limiter.getLimiter(c.ClientIP()).Allow() {
			c.Writer.WriteHeader(http.StatusTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
