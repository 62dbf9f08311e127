package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mec-canteen/canteen/internal/adapters/store/errstore"
	"github.com/mec-canteen/canteen/internal/adapters/store/model"
	"github.com/mec-canteen/canteen/internal/core/canteen"
)

var (
	msgErrorCloseBody = "failed close body request"
)

//	@Summary	Register user
//	@Schemes
//	@Description	registers an account and authenticates it
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200	"account registered and authenticated"
//	@failure		400	"bad request format"
//	@failure		409	"email or college id already taken"
//	@failure		500	"internal error"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tRegistration{}

	err := json.Unmarshal(bBody, &jBody)
	if err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	reg := canteen.Registration{
		CollegeID:  jBody.CollegeID,
		Name:       jBody.Name,
		Email:      jBody.Email,
		Password:   jBody.Password,
		Role:       model.Role(jBody.Role),
		RFIDCardID: jBody.RFIDCardID,
	}

	if err = s.service.Register(ctx, reg); err != nil {
		if errors.Is(err, errstore.ErrEmailNotUnique) || errors.Is(err, errstore.ErrCollegeIDNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, canteen.ErrEmailNotValid) || errors.Is(err, canteen.ErrPasswordNotValid) ||
			errors.Is(err, canteen.ErrCollegeIDNotValid) || errors.Is(err, canteen.ErrRoleNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = s.authorization(c, jBody.Email, jBody.Password); err != nil {
		if errors.Is(err, canteen.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login user
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200	"account authenticated"
//	@failure		400	"bad request format"
//	@failure		401	"wrong email/password pair"
//	@failure		500	"internal error"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tAuthorization{}

	err := json.Unmarshal(bBody, &jBody)
	if err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = s.authorization(c, jBody.Email, jBody.Password); err != nil {
		if errors.Is(err, canteen.ErrEmailNotValid) || errors.Is(err, canteen.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, canteen.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Menu by category
//	@Schemes
//	@Description	available menu items of a category
//	@Tags			menu
//	@Produce		json
//	@Param			category	query	string	true	"breakfast|lunch|breaktime|dinner"
//	@Success		200	{array}	tMenuItem	"menu items"
//	@failure		400	"unknown category"
//	@failure		401	"unauthorized"
//	@failure		500	"internal error"
//	@Router			/api/menu [get]
func (s *Server) handlerGetMenu(c *gin.Context) {
	ctx := c.Request.Context()

	category := model.MenuCategory(c.Query("category"))
	items, err := s.service.GetMenu(ctx, category)
	if err != nil {
		if errors.Is(err, canteen.ErrInvalidCategory) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed get menu", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tMenuItem{}
	for _, item := range items {
		response = append(response, tMenuItem{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	User balance
//	@Schemes
//	@Description	current account balance
//	@Tags			balance
//	@Produce		json
//	@Success		200	{object}	tBalance	"balance"
//	@failure		401	"unauthorized"
//	@failure		404	"account not found"
//	@failure		500	"internal error"
//	@Router			/api/user/balance [get]
func (s *Server) handlerGetUserBalance(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := s.service.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}

		s.log.Error("failed get user balance", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, tBalance{Balance: user.Balance})
}

//	@Summary	Place order
//	@Schemes
//	@Description	settles the cart against the account balance
//	@Tags			order
//	@Accept			json
//	@Param			order	body	tPlaceOrder	true	"line items"
//	@Produce		json
//	@Success		200	{object}	tReceipt	"receipt"
//	@failure		401	"unauthorized"
//	@failure		402	"insufficient balance, please recharge"
//	@failure		404	"account not found"
//	@failure		422	"empty order or invalid line item"
//	@failure		500	"internal error"
//	@failure		504	"settlement timed out"
//	@Router			/api/user/orders [post]
func (s *Server) handlerPlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tPlaceOrder{}
	err = json.Unmarshal(bBody, &jBody)
	if err != nil {
		s.log.Error("failed parse body", zap.String("body", string(bBody)), zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]canteen.LineItem, 0, len(jBody.Items))
	for _, item := range jBody.Items {
		items = append(items, canteen.LineItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	order, err := s.service.PlaceOrder(ctx, userID, items)
	if err != nil {
		if errors.Is(err, canteen.ErrEmptyOrder) || errors.Is(err, canteen.ErrInvalidLineItem) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, errstore.ErrInsufficientFunds) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "insufficient balance, please recharge",
			})
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, canteen.ErrSettlementTimeout) {
			c.Writer.WriteHeader(http.StatusGatewayTimeout)
			return
		}

		s.log.Error("failed place order", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	user, err := s.service.GetUser(ctx, userID)
	if err != nil {
		s.log.Error("failed get user for receipt", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	receipt := tReceipt{
		issuedAt:         order.CreatedAt,
		OrderCode:        order.Code,
		CustomerName:     user.Name,
		Items:            orderItemsResponse(order.Items),
		TotalItems:       order.TotalItems,
		TotalAmount:      order.TotalAmount,
		PreviousBalance:  order.PreviousBalance,
		RemainingBalance: order.RemainingBalance,
	}
	c.JSON(http.StatusOK, receipt.Prepare())
}

//	@Summary	List user orders
//	@Schemes
//	@Description	order history, newest first
//	@Tags			order
//	@Produce		json
//	@Success		200	{array}	tOrderByUser	"orders"
//	@Success		204	"no orders"
//	@failure		401	"unauthorized"
//	@failure		500	"internal error"
//	@Router			/api/user/orders [get]
func (s *Server) handlerGetUserOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orders, err := s.service.GetUserOrders(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get orders by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tOrderByUser{}
	for _, order := range orders {
		resOrder := tOrderByUser{
			createdAt:   order.CreatedAt,
			Code:        order.Code,
			Items:       orderItemsResponse(order.Items),
			TotalItems:  order.TotalItems,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
		}
		response = append(response, *resOrder.Prepare())
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Recharge balance
//	@Schemes
//	@Description	credits the account and records the transaction
//	@Tags			balance
//	@Accept			json
//	@Param			recharge	body	tRecharge	true	"recharge"
//	@Produce		json
//	@Success		200	{object}	tRechargeReceipt	"recharge receipt"
//	@failure		401	"unauthorized"
//	@failure		404	"account not found"
//	@failure		422	"invalid amount or payment mode"
//	@failure		500	"internal error"
//	@failure		504	"settlement timed out"
//	@Router			/api/user/balance/recharge [post]
func (s *Server) handlerRecharge(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status > 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tRecharge{}
	err = json.Unmarshal(bBody, &jBody)
	if err != nil {
		s.log.Error("failed parse body", zap.String("body", string(bBody)), zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	recharge, err := s.service.Recharge(ctx, userID, jBody.Amount, model.PaymentMode(jBody.PaymentMode))
	if err != nil {
		if errors.Is(err, canteen.ErrInvalidAmount) || errors.Is(err, canteen.ErrInvalidPaymentMode) {
			c.Writer.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, canteen.ErrSettlementTimeout) {
			c.Writer.WriteHeader(http.StatusGatewayTimeout)
			return
		}

		s.log.Error("failed recharge balance", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	receipt := tRechargeReceipt{
		issuedAt:         recharge.CreatedAt,
		RechargeCode:     recharge.Code,
		Amount:           recharge.Amount,
		PaymentMode:      recharge.PaymentMode,
		Status:           recharge.Status,
		PreviousBalance:  recharge.PreviousBalance,
		RemainingBalance: recharge.RemainingBalance,
	}
	c.JSON(http.StatusOK, receipt.Prepare())
}

//	@Summary	List user recharges
//	@Schemes
//	@Description	recharge history, newest first
//	@Tags			balance
//	@Produce		json
//	@Success		200	{array}	tRechargeReceipt	"recharges"
//	@Success		204	"no recharges"
//	@failure		401	"unauthorized"
//	@failure		500	"internal error"
//	@Router			/api/user/recharges [get]
func (s *Server) handlerGetUserRecharges(c *gin.Context) {
	ctx := c.Request.Context()
	userID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	recharges, err := s.service.GetUserRecharges(ctx, userID)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}

		s.log.Error("failed get recharges by user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tRechargeReceipt{}
	for _, recharge := range recharges {
		res := tRechargeReceipt{
			issuedAt:         recharge.CreatedAt,
			RechargeCode:     recharge.Code,
			Amount:           recharge.Amount,
			PaymentMode:      recharge.PaymentMode,
			Status:           recharge.Status,
			PreviousBalance:  recharge.PreviousBalance,
			RemainingBalance: recharge.RemainingBalance,
		}
		response = append(response, *res.Prepare())
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List accounts
//	@Schemes
//	@Description	all accounts, admin only
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tUser	"accounts"
//	@failure		401	"unauthorized"
//	@failure		403	"not an admin"
//	@failure		500	"internal error"
//	@Router			/api/admin/users [get]
func (s *Server) handlerAdminUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := s.service.ListUsers(ctx)
	if err != nil {
		s.log.Error("failed list users", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tUser{}
	for _, user := range users {
		res := tUser{
			createdAt: user.CreatedAt,
			ID:        user.ID.String(),
			CollegeID: user.CollegeID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Balance:   user.Balance,
		}
		response = append(response, *res.Prepare())
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List orders
//	@Schemes
//	@Description	all orders, newest first, admin only
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tOrderByUser	"orders"
//	@failure		401	"unauthorized"
//	@failure		403	"not an admin"
//	@failure		500	"internal error"
//	@Router			/api/admin/orders [get]
func (s *Server) handlerAdminOrders(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := s.service.ListOrders(ctx)
	if err != nil {
		s.log.Error("failed list orders", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tOrderByUser{}
	for _, order := range orders {
		res := tOrderByUser{
			createdAt:   order.CreatedAt,
			Code:        order.Code,
			Items:       orderItemsResponse(order.Items),
			TotalItems:  order.TotalItems,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
		}
		response = append(response, *res.Prepare())
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List recharges
//	@Schemes
//	@Description	all recharge transactions, newest first, admin only
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}	tRechargeReceipt	"recharges"
//	@failure		401	"unauthorized"
//	@failure		403	"not an admin"
//	@failure		500	"internal error"
//	@Router			/api/admin/recharges [get]
func (s *Server) handlerAdminRecharges(c *gin.Context) {
	ctx := c.Request.Context()

	recharges, err := s.service.ListRecharges(ctx)
	if err != nil {
		s.log.Error("failed list recharges", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := []tRechargeReceipt{}
	for _, recharge := range recharges {
		res := tRechargeReceipt{
			issuedAt:         recharge.CreatedAt,
			RechargeCode:     recharge.Code,
			Amount:           recharge.Amount,
			PaymentMode:      recharge.PaymentMode,
			Status:           recharge.Status,
			PreviousBalance:  recharge.PreviousBalance,
			RemainingBalance: recharge.RemainingBalance,
		}
		response = append(response, *res.Prepare())
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Dashboard stats
//	@Schemes
//	@Description	totals for the admin dashboard
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	tStats	"stats"
//	@failure		401	"unauthorized"
//	@failure		403	"not an admin"
//	@failure		500	"internal error"
//	@Router			/api/admin/stats [get]
func (s *Server) handlerAdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := s.service.GetStats(ctx)
	if err != nil {
		s.log.Error("failed get stats", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, tStats{
		TotalUsers:     stats.TotalUsers,
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		TotalRecharged: stats.TotalRecharged,
	})
}

func orderItemsResponse(items []model.OrderItem) []tLineItem {
	response := make([]tLineItem, 0, len(items))
	for _, item := range items {
		response = append(response, tLineItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}
	return response
}
