//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var (
	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*mongo.Database, *gin.Engine, config.Config) {
	mongoInfo := startContainers(t)

	cfg := createTestConfig(mongoInfo)

	router, database, app := buildE2EApp(cfg)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// テスト用データベースを削除してから fx アプリを停止する
		if err := database.Drop(ctx); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", database.Name(), "error", err.Error())
		}
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました",
		"mongo_host", mongoInfo.Host,
		"mongo_port", mongoInfo.Port.Port(),
		"database", database.Name())

	return database, router, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	mongoInfo, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "MongoDBコンテナ情報の取得に失敗")

	return mongoInfo
}

// プロセス毎に違うデータベース名を使う
func createTestConfig(mongoInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Mongo.URI = fmt.Sprintf("mongodb://%s:%s", mongoInfo.Host, mongoInfo.Port.Port())
	testConfig.Mongo.Database = "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	return testConfig
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router, database, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *mongo.Database, *fx.App) {
	var router *gin.Engine
	var database *mongo.Database

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.DBModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.ProviderModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &database),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil || database == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, database, app
}

// ------------------------------------------------------------
// MongoDBコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=512m", // データをRAMに載せてI/O削減
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("Waiting for connections"),
				wait.ForListeningPort("27017/tcp"),
			).WithDeadline(60 * time.Second),
			Name:   "mongo-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		mongoTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
			Reuse:            true,
		})
		require.NoError(t, err, "MongoDBコンテナの起動に失敗")
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *mongo.Database
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	database, router, cfg := setupE2EEnvironment(t)
	s.DB = database
	s.Router = router
	s.Config = cfg
	require.NotNil(t, database, "DBのセットアップに失敗")
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// コレクションを空にしてからサブテストを実行する
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}
