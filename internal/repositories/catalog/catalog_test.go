package catalog_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-mechanics/internal/testutils"
)

// StoreTestSuite runs the same behavior checks against every Store implementation
type StoreTestSuite struct {
	suite.Suite
	newStore func() (catalog.Store, func())
	store    catalog.Store
	cleanup  func()
	ctx      context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.store, s.cleanup = s.newStore()
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *StoreTestSuite) TestPutAndGet() {
	output, err := s.store.PutParts(s.ctx, catalog.PutPartsInput{
		Kind:  mechanics.KindPower,
		Parts: testutils.SamplePowerParts(),
	})
	s.Require().NoError(err)
	s.Equal(len(testutils.SamplePowerParts()), output.Count)

	got, err := s.store.GetParts(s.ctx, catalog.GetPartsInput{Kind: mechanics.KindPower})
	s.Require().NoError(err)
	s.ElementsMatch(testutils.SamplePowerParts(), got.Parts)
}

func (s *StoreTestSuite) TestPutReplacesCatalog() {
	_, err := s.store.PutParts(s.ctx, catalog.PutPartsInput{
		Kind:  mechanics.KindItem,
		Parts: testutils.SampleItemParts(),
	})
	s.Require().NoError(err)

	replacement := testutils.SampleItemParts()[:1]
	_, err = s.store.PutParts(s.ctx, catalog.PutPartsInput{Kind: mechanics.KindItem, Parts: replacement})
	s.Require().NoError(err)

	got, err := s.store.GetParts(s.ctx, catalog.GetPartsInput{Kind: mechanics.KindItem})
	s.Require().NoError(err)
	s.Equal(replacement, got.Parts)
}

func (s *StoreTestSuite) TestPutStampsKind() {
	parts := []mechanics.PartDefinition{{ID: 1, Name: "Flight", Mechanic: true}}

	_, err := s.store.PutParts(s.ctx, catalog.PutPartsInput{Kind: mechanics.KindTechnique, Parts: parts})
	s.Require().NoError(err)

	got, err := s.store.GetParts(s.ctx, catalog.GetPartsInput{Kind: mechanics.KindTechnique})
	s.Require().NoError(err)
	s.Require().Len(got.Parts, 1)
	s.Equal(mechanics.KindTechnique, got.Parts[0].Kind)
	s.Empty(parts[0].Kind, "input is not mutated")
}

func (s *StoreTestSuite) TestMissingCatalog() {
	_, err := s.store.GetParts(s.ctx, catalog.GetPartsInput{Kind: mechanics.KindItem})
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestValidation() {
	_, err := s.store.GetParts(s.ctx, catalog.GetPartsInput{Kind: "spell"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.PutParts(s.ctx, catalog.PutPartsInput{Kind: "spell"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.PutParts(s.ctx, catalog.PutPartsInput{
		Kind:  mechanics.KindPower,
		Parts: []mechanics.PartDefinition{{ID: 1}},
	})
	s.True(errors.IsInvalidArgument(err), "name is required")

	_, err = s.store.PutParts(s.ctx, catalog.PutPartsInput{
		Kind:  mechanics.KindPower,
		Parts: []mechanics.PartDefinition{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}},
	})
	s.True(errors.IsInvalidArgument(err), "ids are unique")

	_, err = s.store.PutParts(s.ctx, catalog.PutPartsInput{
		Kind:  mechanics.KindPower,
		Parts: []mechanics.PartDefinition{{ID: 1, Name: "Flight"}, {ID: 2, Name: "Flight"}},
	})
	s.True(errors.IsInvalidArgument(err), "names are unique")
	s.Contains(errors.GetMessage(err), `duplicate part name "Flight"`)
}

func TestInMemoryStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() (catalog.Store, func()) {
		store, err := catalog.NewInMemory(nil)
		require.NoError(t, err)
		return store, func() {}
	}})
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() (catalog.Store, func()) {
		client, cleanup := testutils.CreateTestRedisClient(t)
		store, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
		require.NoError(t, err)
		return store, cleanup
	}})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() (catalog.Store, func()) {
		store, err := catalog.OpenSQLite(":memory:")
		require.NoError(t, err)
		return store, func() { _ = store.Close() }
	}})
}

func TestInMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store, err := catalog.NewInMemory(map[mechanics.Kind][]mechanics.PartDefinition{
		mechanics.KindPower: testutils.SamplePowerParts(),
	})
	require.NoError(t, err)

	first, err := store.GetParts(ctx, catalog.GetPartsInput{Kind: mechanics.KindPower})
	require.NoError(t, err)
	first.Parts[0].Name = "Changed"
	first.Parts[1].Options[0].Energy = 100

	second, err := store.GetParts(ctx, catalog.GetPartsInput{Kind: mechanics.KindPower})
	require.NoError(t, err)
	assert.Equal(t, "Reaction", second.Parts[0].Name)
	assert.Equal(t, 1.0, second.Parts[1].Options[0].Energy)
}

func TestNewInMemoryRejectsInvalidSeed(t *testing.T) {
	_, err := catalog.NewInMemory(map[mechanics.Kind][]mechanics.PartDefinition{
		"spell": testutils.SamplePowerParts(),
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRedisStoreFailures(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	store, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	require.NoError(t, err)

	mock.ExpectGet("catalog:power").SetErr(stderrors.New("connection refused"))
	_, err = store.GetParts(ctx, catalog.GetPartsInput{Kind: mechanics.KindPower})
	assert.Error(t, err)
	assert.False(t, errors.IsNotFound(err))

	mock.ExpectGet("catalog:item").SetVal("not json")
	_, err = store.GetParts(ctx, catalog.GetPartsInput{Kind: mechanics.KindItem})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = catalog.NewRedis(&catalog.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	store, err := catalog.OpenSQLite(path)
	require.NoError(t, err)
	_, err = store.PutParts(ctx, catalog.PutPartsInput{Kind: mechanics.KindItem, Parts: testutils.SampleItemParts()})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := catalog.OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.GetParts(ctx, catalog.GetPartsInput{Kind: mechanics.KindItem})
	require.NoError(t, err)
	assert.Len(t, got.Parts, len(testutils.SampleItemParts()))

	_, err = catalog.OpenSQLite("  ")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestReadFileJSON(t *testing.T) {
	catalogs, err := catalog.ReadFile(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	require.Len(t, catalogs[mechanics.KindPower], 2)
	physical := catalogs[mechanics.KindPower][0]
	assert.Equal(t, "Physical Damage", physical.Name)
	assert.Equal(t, mechanics.KindPower, physical.Kind)
	assert.Equal(t, 0.5, physical.OptionAt(0).TP)
	assert.True(t, catalogs[mechanics.KindPower][1].Percentage)

	require.Len(t, catalogs[mechanics.KindItem], 1)
	assert.Equal(t, 0.5, catalogs[mechanics.KindItem][0].Base.IP)
	assert.NotContains(t, catalogs, mechanics.KindTechnique)
}

func TestReadFileTOML(t *testing.T) {
	catalogs, err := catalog.ReadFile(filepath.Join("testdata", "catalog.toml"))
	require.NoError(t, err)

	parts := catalogs[mechanics.KindTechnique]
	require.Len(t, parts, 2)
	assert.Equal(t, "Additional Damage", parts[0].Name)
	assert.True(t, parts[0].Mechanic)
	assert.Equal(t, 1.0, parts[0].Base.Energy)
	require.Len(t, parts[0].Options, 1)
	assert.Equal(t, 0.5, parts[0].Options[0].TP)
	assert.Equal(t, "+1 damage level", parts[0].Options[0].Description)
	assert.Equal(t, 1.0, parts[1].Base.TP)
}

func TestReadFileErrors(t *testing.T) {
	_, err := catalog.ReadFile(filepath.Join("testdata", "missing.json"))
	assert.True(t, errors.IsNotFound(err))

	_, err = catalog.DecodeFile("catalog.yaml", []byte("powers: []"))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = catalog.DecodeFile("catalog.json", []byte("{"))
	assert.True(t, errors.IsInvalidArgument(err))

	dup := []byte(`{"items": [{"id": 1, "name": "Range"}, {"id": 2, "name": "Range"}]}`)
	_, err = catalog.DecodeFile("catalog.json", dup)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFileRepositoryWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"id":1,"name":"Range","mechanic":true}]}`), 0o600))

	repo, err := catalog.NewFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- repo.Watch(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// give the watcher time to register before the write
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"items":[{"id":1,"name":"Range","mechanic":true},{"id":2,"name":"Warded","mechanic":true}]}`), 0o600))

	assert.Eventually(t, func() bool {
		output, err := repo.GetParts(context.Background(), catalog.GetPartsInput{Kind: mechanics.KindItem})
		return err == nil && len(output.Parts) == 2
	}, 2*time.Second, 20*time.Millisecond)

	// a broken write keeps the last good catalog
	require.NoError(t, os.WriteFile(path, []byte(`{"items":`), 0o600))
	time.Sleep(300 * time.Millisecond)

	output, err := repo.GetParts(context.Background(), catalog.GetPartsInput{Kind: mechanics.KindItem})
	require.NoError(t, err)
	assert.Len(t, output.Parts, 2)
}
