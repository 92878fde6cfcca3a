package queries_test

import (
	"context"
	"testing"
	"time"

	"dietboard/internal/adapters/out/postgres/patientrepo"
	"dietboard/internal/core/application/usecases/queries"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/patient"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPatientsQueryHandlerTestSuite struct {
	suite.Suite
	container   *tcpostgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetPatientsQueryHandler
	patientRepo *patientrepo.GormPatientRepository
}

func (suite *GetPatientsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&patientrepo.PatientDTO{}))

	suite.handler = queries.NewGetPatientsQueryHandler(db)
	suite.patientRepo = patientrepo.NewGormPatientRepository(db)
}

func (suite *GetPatientsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPatientsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE patients").Error)
}

func (suite *GetPatientsQueryHandlerTestSuite) seedPatient(name, room string) *patient.Patient {
	pat, err := patient.NewPatient(kernel.NewUUID(), name, room, "Ward A", "nuts", "Free")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.patientRepo.Add(context.Background(), pat))
	return pat
}

func (suite *GetPatientsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetPatientsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPatientsQueryHandlerTestSuite) TestHandle_ReturnsPatientsSortedByRoom() {
	costa := suite.seedPatient("Mrs. Costa", "204-B")
	silva := suite.seedPatient("Mr. Silva", "101-A")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetPatientsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(silva.ID(), result[0].ID)
	suite.Equal("Mr. Silva", result[0].Name)
	suite.Equal("101-A", result[0].Room)
	suite.Equal("nuts", result[0].Allergies)
	suite.Equal(costa.ID(), result[1].ID)
}

func (suite *GetPatientsQueryHandlerTestSuite) TestHandle_NotConstructedQuery_Fails() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPatientsQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetPatientsQueryIsNotConstructed)
}

func TestGetPatientsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPatientsQueryHandlerTestSuite))
}
