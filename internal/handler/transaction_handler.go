package handler

import (
	"log"
	"net/http"

	"finanzas_tracker/internal/model"
	"finanzas_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// RootMessage is returned by the API root endpoint
const RootMessage = "API de Gestión Financiera - Colombia"

// TransactionHandler handles transaction and cash count requests
type TransactionHandler struct {
	service service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req model.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	transaction, err := h.service.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating transaction: %v", err) // Log detailed error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.service.ListTransactions(c.Request.Context())
	if err != nil {
		log.Printf("Error getting transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) CreateCashCount(c *gin.Context) {
	var req model.CreateCashCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	count, err := h.service.CreateCashCount(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating cash count: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cash count"})
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *TransactionHandler) GetCashCounts(c *gin.Context) {
	counts, err := h.service.ListCashCounts(c.Request.Context())
	if err != nil {
		log.Printf("Error getting cash counts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cash counts"})
		return
	}
	if counts == nil {
		counts = []model.CashCount{}
	}
	c.JSON(http.StatusOK, counts)
}

// RegisterTransactionRoutes registers transaction and cash count routes
func (h *TransactionHandler) RegisterTransactionRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.POST("/transactions", h.CreateTransaction)
	rg.GET("/transactions", h.GetTransactions)
	rg.POST("/cash-counts", h.CreateCashCount)
	rg.GET("/cash-counts", h.GetCashCounts)
}
