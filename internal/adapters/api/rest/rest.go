package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/mec-canteen/canteen/docs"
	"github.com/mec-canteen/canteen/internal/adapters/store/model"
	"github.com/mec-canteen/canteen/internal/core/canteen"
	"github.com/mec-canteen/canteen/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "UserID"

	errUnauthorize = errors.New("unauthorized")
)

type canteenI interface {
	Register(ctx context.Context, reg canteen.Registration) error
	Authorization(ctx context.Context, email, password string) (model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	GetMenu(ctx context.Context, category model.MenuCategory) ([]*model.MenuItem, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID, items []canteen.LineItem) (*model.Order, error)
	Recharge(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, mode model.PaymentMode) (*model.RechargeTransaction, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*model.Order, error)
	GetUserRecharges(ctx context.Context, userID uuid.UUID) ([]*model.RechargeTransaction, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	ListRecharges(ctx context.Context) ([]*model.RechargeTransaction, error)
	GetStats(ctx context.Context) (canteen.Stats, error)
}

type Server struct {
	log       *zap.Logger
	engine    *gin.Engine
	service   canteenI
	address   string
	secret    []byte
	rateRPS   float64
	rateBurst int
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func SetAddress(address string) Option {
	return func(s *Server) {
		s.address = address
	}
}

func SetSecretKey(key []byte) Option {
	return func(s *Server) {
		s.secret = key
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
		s.rateRPS = cfg.RateRPS
		s.rateBurst = cfg.RateBurst
	}
}

//	@title			MEC Canteen
//	@version		1.0
//	@description	Canteen wallet and ordering service.
//	@host			localhost:8080
//	@BasePath		/

func New(service canteenI, options ...Option) (*Server, error) {
	s := &Server{
		log:       zap.NewNop(),
		service:   service,
		rateRPS:   5,
		rateBurst: 10,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.RateLimit(),
	)
	api := s.engine.Group("/api")
	{
		api.POST("/user/register", s.handlerRegister)
		api.POST("/user/login", s.handlerLogin)

		authAPI := api.Group("/")
		authAPI.Use(s.Authentication())
		{
			authAPI.GET("/menu", s.handlerGetMenu)
			authAPI.GET("/user/balance", s.handlerGetUserBalance)
			authAPI.POST("/user/orders", s.handlerPlaceOrder)
			authAPI.GET("/user/orders", s.handlerGetUserOrders)
			authAPI.POST("/user/balance/recharge", s.handlerRecharge)
			authAPI.GET("/user/recharges", s.handlerGetUserRecharges)
		}

		adminAPI := api.Group("/admin")
		adminAPI.Use(s.Authentication(), s.AdminOnly())
		{
			adminAPI.GET("/users", s.handlerAdminUsers)
			adminAPI.GET("/orders", s.handlerAdminOrders)
			adminAPI.GET("/recharges", s.handlerAdminRecharges)
			adminAPI.GET("/stats", s.handlerAdminStats)
		}
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uuid.UUID, err error) {
	var ok bool
	var userIDS string
	cookieUserID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed reade user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err = jwtRest.Verify(cookieUserID.Value, cookieKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return uuid.Nil, fmt.Errorf("unverify usercookie: %w", errUnauthorize)
	}

	userID, err = uuid.Parse(userIDS)
	if err != nil {
		return uuid.Nil, fmt.Errorf("can't parse userID from token: %w", err)
	}

	return userID, nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, email, password string) error {
	ctx := c.Request.Context()
	var err error
	var user model.User
	if user, err = s.service.Authorization(ctx, email, password); err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, user.ID.String())
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}

func (s *Server) readBody(c *gin.Context) ([]byte, int) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		return []byte{}, http.StatusInternalServerError
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, 0
}
