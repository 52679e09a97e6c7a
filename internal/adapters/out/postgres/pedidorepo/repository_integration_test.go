package pedidorepo_test

import (
	"context"
	"testing"
	"time"

	"fleetrent/internal/adapters/out/postgres/pedidorepo"
	"fleetrent/internal/core/domain/model/kernel"
	"fleetrent/internal/core/domain/model/machine"
	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type PedidoRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pedidorepo.GormPedidoRepository
	tracker    *MockAggregateTracker
}

func (suite *PedidoRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pedidorepo.PedidoDTO{}, &pedidorepo.HistoryDTO{}))
}

func (suite *PedidoRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pedidos, pedido_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = pedidorepo.NewGormPedidoRepository(suite.db, suite.tracker)
}

func (suite *PedidoRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PedidoRepositoryIntegrationTestSuite) newPedido(seq int) *pedido.Pedido {
	id, err := kernel.NewOrderID(seq)
	suite.Require().NoError(err)
	p, err := pedido.NewPedido(id, "jgarcia", "obras", map[string]int{"excavadora": 2}, "urgente")
	suite.Require().NoError(err)
	return p
}

func (suite *PedidoRepositoryIntegrationTestSuite) actor(name string) kernel.Actor {
	actor, err := kernel.NewActor(name)
	suite.Require().NoError(err)
	return actor
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestNextID_EmptyTable() {
	id, err := suite.repository.NextID(context.Background())

	suite.Require().NoError(err)
	suite.Equal("P-0001", id.String())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestNextID_Sequential() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPedido(1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPedido(2)))

	id, err := suite.repository.NextID(ctx)

	suite.Require().NoError(err)
	suite.Equal("P-0003", id.String())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newPedido(1)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.Equal("P-0001", loaded.ID().String())
	suite.Equal("jgarcia", loaded.Requester())
	suite.Equal("obras", loaded.Service())
	suite.Equal(pedido.PendingPreparation, loaded.Status())
	suite.Equal(map[string]int{"excavadora": 2}, loaded.RequestedItems())
	suite.Equal("urgente", loaded.Note())

	suite.Require().Len(loaded.History(), 1)
	suite.Equal(pedido.ActionCreated, loaded.History()[0].Action())
	suite.Equal("jgarcia", loaded.History()[0].Actor())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestUpdate_AppendsOnlyNewHistory() {
	ctx := context.Background()
	p := suite.newPedido(1)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	snapshots := []machine.Snapshot{
		{ID: "M-01", Type: "excavadora", Model: "GX-200"},
		{ID: "M-02", Type: "excavadora", Model: "GX-200"},
	}
	suite.Require().NoError(p.Assign(snapshots, nil, "", suite.actor("deposito")))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	suite.Require().NoError(p.MarkDelivered("", suite.actor("deposito")))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	var count int64
	suite.Require().NoError(
		suite.db.Model(&pedidorepo.HistoryDTO{}).Where("pedido_id = ?", "P-0001").Count(&count).Error,
	)
	suite.Equal(int64(3), count)

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(pedido.Delivered, loaded.Status())
	suite.Require().Len(loaded.History(), 3)
	suite.Equal(pedido.ActionMachinesAssigned, loaded.History()[1].Action())

	// snapshot detail survives the round trip
	suite.Equal(snapshots, loaded.History()[1].Detail().Asignadas)
	suite.Equal([]string{"M-01", "M-02"}, loaded.AssignedIDs())
}

// History rows carry a per-pedido sequence so reads reproduce the append
// order exactly, even when consecutive entries share a timestamp.
func (suite *PedidoRepositoryIntegrationTestSuite) TestHistorySequence_DeterministicOrder() {
	ctx := context.Background()
	p := suite.newPedido(1)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	snapshots := []machine.Snapshot{{ID: "M-01", Type: "excavadora"}}
	suite.Require().NoError(p.Assign(snapshots, nil, "only one in stock", suite.actor("deposito")))
	suite.Require().NoError(p.MarkDelivered("", suite.actor("deposito")))
	suite.Require().NoError(p.RegisterReturn([]string{"M-01"}, "", suite.actor("jgarcia")))
	suite.Require().NoError(p.ConfirmReturn([]string{"M-01"}, nil, "", suite.actor("deposito")))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	var seqs []int
	suite.Require().NoError(
		suite.db.Model(&pedidorepo.HistoryDTO{}).
			Where("pedido_id = ?", "P-0001").
			Order("seq").
			Pluck("seq", &seqs).Error,
	)
	suite.Equal([]int{0, 1, 2, 3, 4}, seqs)

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.History(), 5)
	for i, entry := range p.History() {
		suite.Equal(entry.Action(), loaded.History()[i].Action())
	}
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestGetAllInStatus() {
	ctx := context.Background()
	p1 := suite.newPedido(1)
	p2 := suite.newPedido(2)
	suite.Require().NoError(suite.repository.Add(ctx, p1))
	suite.Require().NoError(suite.repository.Add(ctx, p2))

	snapshots := []machine.Snapshot{
		{ID: "M-01", Type: "excavadora"}, {ID: "M-02", Type: "excavadora"},
	}
	suite.Require().NoError(p1.Assign(snapshots, nil, "", suite.actor("deposito")))
	suite.Require().NoError(p1.MarkDelivered("", suite.actor("deposito")))
	suite.Require().NoError(suite.repository.Update(ctx, p1))

	delivered, err := suite.repository.GetAllInStatus(ctx, pedido.Delivered)
	suite.Require().NoError(err)
	suite.Require().Len(delivered, 1)
	suite.Equal("P-0001", delivered[0].ID().String())

	pending, err := suite.repository.GetAllInStatus(ctx, pedido.PendingPreparation)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("P-0002", pending[0].ID().String())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestDelete_RemovesHistory() {
	ctx := context.Background()
	p := suite.newPedido(1)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var count int64
	suite.Require().NoError(suite.db.Model(&pedidorepo.HistoryDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	id, err := kernel.NewOrderID(42)
	suite.Require().NoError(err)

	err = suite.repository.Delete(context.Background(), id)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPedidoRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PedidoRepositoryIntegrationTestSuite))
}
