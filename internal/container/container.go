package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/satriajanaka/go-auth-scaffold/config"
	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/tokens"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenManager  *tokens.Manager
	cookieManager *helpers.CookieManager
)

func SetConfig(c *config.Config)  { cfg = c }
func GetConfig() *config.Config   { return cfg }
func SetLogger(l *logrus.Logger)  { logger = l }
func GetLogger() *logrus.Logger   { return logger }
func SetPGPool(p *pgxpool.Pool)   { pgPool = p }
func GetPGPool() *pgxpool.Pool    { return pgPool }
func SetRedis(r *redis.Client)    { redisClient = r }
func GetRedis() *redis.Client     { return redisClient }
func SetTokens(m *tokens.Manager) { tokenManager = m }
func GetTokens() *tokens.Manager  { return tokenManager }

func SetCookies(m *helpers.CookieManager) { cookieManager = m }
func GetCookies() *helpers.CookieManager  { return cookieManager }
