package database_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"story-server/pkg/migration"
	"story-server/shared/database"
	"story-server/shared/database/migrations"
	"story-server/shared/interfaces"
	"story-server/shared/models"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	tx        interfaces.Transactor

	stories   interfaces.StoryRepository
	chars     interfaces.CharacterRepository
	scenes    interfaces.SceneRepository
	likes     interfaces.LikeRepository
	favorites interfaces.FavoriteRepository
	comments  interfaces.CommentRepository
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("story-test"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(5*time.Minute),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.pool, err = pgxpool.New(ctx, connStr)
	s.Require().NoError(err)

	migrator := migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, s.pool)
	s.Require().NoError(migrator.Up(ctx))

	logger := zap.NewNop()
	s.tx = database.NewPgTransactor(s.pool, logger)
	s.stories = database.NewPgStoryRepository(logger)
	s.chars = database.NewPgCharacterRepository(logger)
	s.scenes = database.NewPgSceneRepository(logger)
	s.likes = database.NewPgLikeRepository(logger)
	s.favorites = database.NewPgFavoriteRepository(logger)
	s.comments = database.NewPgCommentRepository(logger)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE story_likes, story_favorites, story_comments, scene_media, scenes, characters, story_images, stories`)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) createStory(author, title string, published bool) *models.Story {
	story := &models.Story{Title: title, Content: "text", AuthorUsername: author, IsPublished: published}
	s.Require().NoError(s.stories.Create(context.Background(), s.pool, story))
	return story
}

// like runs AddLike and the counter update in one transaction, as the service does.
func (s *RepositoryIntegrationSuite) like(storyID uuid.UUID, username string) (bool, error) {
	var added bool
	err := s.tx.WithTx(context.Background(), func(tx interfaces.DBTX) error {
		var err error
		added, err = s.likes.AddLike(context.Background(), tx, storyID, username)
		if err != nil || !added {
			return err
		}
		return s.stories.IncrementLikeCount(context.Background(), tx, storyID)
	})
	return added, err
}

func (s *RepositoryIntegrationSuite) unlike(storyID uuid.UUID, username string) (bool, error) {
	var removed bool
	err := s.tx.WithTx(context.Background(), func(tx interfaces.DBTX) error {
		var err error
		removed, err = s.likes.RemoveLike(context.Background(), tx, storyID, username)
		if err != nil || !removed {
			return err
		}
		return s.stories.DecrementLikeCount(context.Background(), tx, storyID)
	})
	return removed, err
}

func (s *RepositoryIntegrationSuite) TestStoryCreate_DuplicateTitleConflict() {
	t := s.T()
	ctx := context.Background()
	s.createStory("alice", "Same", false)

	err := s.stories.Create(ctx, s.pool, &models.Story{Title: "Same", AuthorUsername: "alice"})
	assert.ErrorIs(t, err, models.ErrConflict)

	other := &models.Story{Title: "Same", AuthorUsername: "bob"}
	assert.NoError(t, s.stories.Create(ctx, s.pool, other), "another author may reuse the title")
}

func (s *RepositoryIntegrationSuite) TestStoryExistsByAuthorAndTitle_ExcludesSelf() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Mine", false)

	exists, err := s.stories.ExistsByAuthorAndTitle(ctx, s.pool, "alice", "Mine", story.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.stories.ExistsByAuthorAndTitle(ctx, s.pool, "alice", "Mine", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)
}

func (s *RepositoryIntegrationSuite) TestStoryGetByID_NotFound() {
	_, err := s.stories.GetByID(context.Background(), s.pool, uuid.New())
	assert.ErrorIs(s.T(), err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestListPublished_InsertionOrderAndDraftsExcluded() {
	t := s.T()
	first := s.createStory("alice", "First", true)
	s.createStory("alice", "Draft", false)
	third := s.createStory("bob", "Third", true)

	list, err := s.stories.ListPublished(context.Background(), s.pool)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, third.ID, list[1].ID)

	mine, err := s.stories.ListByAuthor(context.Background(), s.pool, "alice")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func (s *RepositoryIntegrationSuite) TestLike_IdempotentAndCounted() {
	t := s.T()
	story := s.createStory("alice", "Liked", true)

	added, err := s.like(story.ID, "bob")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.like(story.ID, "bob")
	require.NoError(t, err)
	assert.False(t, added, "second like must be a no-op")

	got, err := s.stories.GetByID(context.Background(), s.pool, story.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)

	liked, err := s.likes.CheckLike(context.Background(), s.pool, story.ID, "bob")
	require.NoError(t, err)
	assert.True(t, liked)
}

func (s *RepositoryIntegrationSuite) TestLike_ConcurrentUsersMatchRowCount() {
	t := s.T()
	story := s.createStory("alice", "Popular", true)

	const users = 20
	var wg sync.WaitGroup
	errs := make(chan error, users*2)
	for i := 0; i < users; i++ {
		username := fmt.Sprintf("user-%d", i)
		// Each user likes twice concurrently; only one of the two may count.
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.like(story.ID, username); err != nil {
					errs <- err
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, err := s.likes.CountLikes(context.Background(), s.pool, story.ID)
	require.NoError(t, err)
	got, err := s.stories.GetByID(context.Background(), s.pool, story.ID)
	require.NoError(t, err)
	assert.EqualValues(t, users, rows)
	assert.EqualValues(t, rows, got.LikeCount)
}

func (s *RepositoryIntegrationSuite) TestUnlike_CounterNeverNegative() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Floor", true)

	removed, err := s.unlike(story.ID, "bob")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, s.stories.DecrementLikeCount(ctx, s.pool, story.ID))
	got, err := s.stories.GetByID(ctx, s.pool, story.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount)
}

func (s *RepositoryIntegrationSuite) TestLike_MissingStoryIsNotFound() {
	_, err := s.likes.AddLike(context.Background(), s.pool, uuid.New(), "bob")
	assert.ErrorIs(s.T(), err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestLikedStoryIDs_SubsetOnly() {
	t := s.T()
	a := s.createStory("alice", "A", true)
	b := s.createStory("alice", "B", true)
	_, err := s.like(a.ID, "bob")
	require.NoError(t, err)

	set, err := s.likes.LikedStoryIDs(context.Background(), s.pool, "bob", []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	assert.True(t, set[a.ID])
	assert.False(t, set[b.ID])

	empty, err := s.likes.LikedStoryIDs(context.Background(), s.pool, "", []uuid.UUID{a.ID})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func (s *RepositoryIntegrationSuite) TestFavorites_OrderedByInsertion() {
	t := s.T()
	ctx := context.Background()
	a := s.createStory("alice", "A", true)
	b := s.createStory("alice", "B", true)

	added, err := s.favorites.AddFavorite(ctx, s.pool, b.ID, "bob")
	require.NoError(t, err)
	assert.True(t, added)
	_, err = s.favorites.AddFavorite(ctx, s.pool, a.ID, "bob")
	require.NoError(t, err)
	added, err = s.favorites.AddFavorite(ctx, s.pool, a.ID, "bob")
	require.NoError(t, err)
	assert.False(t, added)

	ids, err := s.favorites.ListStoryIDsByUser(ctx, s.pool, "bob")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, ids)

	removed, err := s.favorites.RemoveFavorite(ctx, s.pool, b.ID, "bob")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = s.favorites.RemoveFavorite(ctx, s.pool, b.ID, "bob")
	require.NoError(t, err)
	assert.False(t, removed)

	favorited, err := s.favorites.CheckFavorite(ctx, s.pool, b.ID, "bob")
	require.NoError(t, err)
	assert.False(t, favorited)
	favorited, err = s.favorites.CheckFavorite(ctx, s.pool, a.ID, "bob")
	require.NoError(t, err)
	assert.True(t, favorited)
	favorited, err = s.favorites.CheckFavorite(ctx, s.pool, a.ID, "carol")
	require.NoError(t, err)
	assert.False(t, favorited)
}

func (s *RepositoryIntegrationSuite) TestGetByID_CanceledContextIsInternal() {
	t := s.T()
	story := s.createStory("alice", "Canceled", true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.stories.GetByID(ctx, s.pool, story.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInternalServer)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestUnlike_AfterUnpublish() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Withdrawn", true)
	_, err := s.like(story.ID, "bob")
	require.NoError(t, err)
	require.NoError(t, s.stories.SetPublished(ctx, s.pool, story.ID, false))

	removed, err := s.unlike(story.ID, "bob")
	require.NoError(t, err)
	assert.True(t, removed)

	liked, err := s.likes.CheckLike(ctx, s.pool, story.ID, "bob")
	require.NoError(t, err)
	assert.False(t, liked)
	got, err := s.stories.GetByID(ctx, s.pool, story.ID)
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)
}

func (s *RepositoryIntegrationSuite) TestReplaceForStory_FreshIDsInOrder() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Cast", false)

	first := []models.Character{{Name: "Ann"}, {Name: "Ben"}}
	require.NoError(t, s.chars.ReplaceForStory(ctx, s.pool, story.ID, first))
	before, err := s.chars.ListByStories(ctx, s.pool, []uuid.UUID{story.ID})
	require.NoError(t, err)
	require.Len(t, before[story.ID], 2)

	second := []models.Character{{Name: "Cid"}, {Name: "Ann"}}
	require.NoError(t, s.chars.ReplaceForStory(ctx, s.pool, story.ID, second))
	after, err := s.chars.ListByStories(ctx, s.pool, []uuid.UUID{story.ID})
	require.NoError(t, err)
	require.Len(t, after[story.ID], 2)
	assert.Equal(t, "Cid", after[story.ID][0].Name)
	assert.Equal(t, "Ann", after[story.ID][1].Name)
	for _, old := range before[story.ID] {
		for _, c := range after[story.ID] {
			assert.NotEqual(t, old.ID, c.ID)
		}
	}

	_, err = s.chars.GetByID(ctx, s.pool, before[story.ID][0].ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestCharacterCreate_MissingStoryIsNotFound() {
	missing := uuid.New()
	err := s.chars.Create(context.Background(), s.pool, &models.Character{Name: "Orphan", StoryID: &missing})
	assert.ErrorIs(s.T(), err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestReplaceImages_KeepsSubmissionOrder() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Pics", false)

	require.NoError(t, s.stories.ReplaceImages(ctx, s.pool, story.ID, []string{"/a.png", "/b.png"}))
	require.NoError(t, s.stories.ReplaceImages(ctx, s.pool, story.ID, []string{"/c.png", "/a.png"}))

	urls, err := s.stories.ListImageURLs(ctx, s.pool, []uuid.UUID{story.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"/c.png", "/a.png"}, urls[story.ID])
}

func (s *RepositoryIntegrationSuite) TestScenes_OrderAndMedia() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Acts", false)

	late := &models.Scene{ID: uuid.New(), StoryID: story.ID, Title: "Late", Order: 2, CharacterNames: []string{"Ann"}, CreatedAt: time.Now().UTC()}
	early := &models.Scene{ID: uuid.New(), StoryID: story.ID, Title: "Early", Order: 1, CharacterNames: []string{}, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.scenes.Create(ctx, s.pool, late))
	require.NoError(t, s.scenes.Create(ctx, s.pool, early))

	require.NoError(t, s.scenes.AddMedia(ctx, s.pool, []models.SceneMedia{
		{ID: uuid.New(), SceneID: late.ID, URL: "/uploads/scenes/image/x.png", Type: models.MediaTypeImage},
		{ID: uuid.New(), SceneID: late.ID, URL: "/uploads/scenes/audio/y.mp3", Type: models.MediaTypeAudio},
	}))

	list, err := s.scenes.ListByStory(ctx, s.pool, story.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)
	require.Len(t, list[1].Media, 2)
	assert.Equal(t, models.MediaTypeImage, list[1].Media[0].Type)
	assert.Equal(t, []string{"Ann"}, list[1].CharacterNames)

	require.NoError(t, s.scenes.DeleteByStory(ctx, s.pool, story.ID))
	_, err = s.scenes.GetByID(ctx, s.pool, late.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestComments_NewestFirstAndCounted() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Talk", true)
	quiet := s.createStory("alice", "Quiet", true)

	base := time.Now().UTC().Add(-time.Minute)
	older := &models.Comment{StoryID: story.ID, Username: "bob", Content: "first", CreatedAt: base}
	newer := &models.Comment{StoryID: story.ID, Username: "carol", Content: "second", CreatedAt: base.Add(time.Second)}
	require.NoError(t, s.comments.Create(ctx, s.pool, older))
	require.NoError(t, s.comments.Create(ctx, s.pool, newer))

	list, err := s.comments.ListByStory(ctx, s.pool, story.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	counts, err := s.comments.CountByStories(ctx, s.pool, []uuid.UUID{story.ID, quiet.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, counts[story.ID])
	_, ok := counts[quiet.ID]
	assert.False(t, ok)

	require.NoError(t, s.comments.Delete(ctx, s.pool, older.ID))
	err = s.comments.Delete(ctx, s.pool, older.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestWithTx_RollbackOnError() {
	t := s.T()
	ctx := context.Background()
	story := s.createStory("alice", "Atomic", true)
	boom := errors.New("boom")

	err := s.tx.WithTx(ctx, func(tx interfaces.DBTX) error {
		if _, err := s.likes.AddLike(ctx, tx, story.ID, "bob"); err != nil {
			return err
		}
		if err := s.stories.IncrementLikeCount(ctx, tx, story.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	liked, err := s.likes.CheckLike(ctx, s.pool, story.ID, "bob")
	require.NoError(t, err)
	assert.False(t, liked)
	got, err := s.stories.GetByID(ctx, s.pool, story.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		t.Skipf("Docker client init error: %v", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		cli.Close()
		t.Skipf("Docker daemon is not accessible: %v", err)
	}
	cli.Close()

	suite.Run(t, new(RepositoryIntegrationSuite))
}
