package messaging_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"story-server/shared/messaging"
	"story-server/shared/models"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func TestNoopStoryEventPublisher(t *testing.T) {
	var p messaging.NoopStoryEventPublisher
	assert.NoError(t, p.PublishStoryEvent(context.Background(), models.NewStoryEvent(models.EventStoryCreated, uuid.New(), "alice")))
}

func TestNewRabbitMQStoryEventPublisher_NilConnection(t *testing.T) {
	_, err := messaging.NewRabbitMQStoryEventPublisher(nil, "", zap.NewNop())
	assert.Error(t, err)
}

type PublisherIntegrationSuite struct {
	suite.Suite
	container *rabbitmq.RabbitMQContainer
	conn      *amqp.Connection
	publisher *messaging.RabbitMQStoryEventPublisher
}

func (s *PublisherIntegrationSuite) SetupSuite() {
	ctx := context.Background()
	container, err := rabbitmq.Run(ctx,
		"rabbitmq:3-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").WithStartupTimeout(2*time.Minute),
		),
	)
	s.Require().NoError(err)
	s.container = container

	url, err := container.AmqpURL(ctx)
	s.Require().NoError(err)
	s.conn, err = amqp.Dial(url)
	s.Require().NoError(err)

	s.publisher, err = messaging.NewRabbitMQStoryEventPublisher(s.conn, "", zap.NewNop())
	s.Require().NoError(err)
}

func (s *PublisherIntegrationSuite) TearDownSuite() {
	if s.publisher != nil {
		_ = s.publisher.Close()
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

// bindQueue declares an exclusive queue bound to the story events exchange.
func (s *PublisherIntegrationSuite) bindQueue(key string) (*amqp.Channel, <-chan amqp.Delivery) {
	ch, err := s.conn.Channel()
	s.Require().NoError(err)
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	s.Require().NoError(err)
	s.Require().NoError(ch.QueueBind(q.Name, key, messaging.StoryEventsExchangeName, false, nil))
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	s.Require().NoError(err)
	return ch, deliveries
}

func (s *PublisherIntegrationSuite) TestPublishStoryEvent_RoutedByType() {
	t := s.T()
	ch, deliveries := s.bindQueue(messaging.AllStoryEventsKey)
	defer ch.Close()

	event := models.NewStoryEvent(models.EventStoryLiked, uuid.New(), "bob")
	require.NoError(t, s.publisher.PublishStoryEvent(context.Background(), event))

	select {
	case d := <-deliveries:
		assert.Equal(t, string(models.EventStoryLiked), d.RoutingKey)
		assert.Equal(t, "application/json", d.ContentType)
		assert.Equal(t, event.EventID.String(), d.MessageId)
		assert.Equal(t, amqp.Persistent, d.DeliveryMode)

		var got models.StoryEvent
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, event.EventID, got.EventID)
		assert.Equal(t, event.StoryID, got.StoryID)
		assert.Equal(t, "bob", got.Actor)
	case <-time.After(10 * time.Second):
		t.Fatal("story event was not delivered")
	}
}

func (s *PublisherIntegrationSuite) TestPublishStoryEvent_CommentEventsNotOnStoryKey() {
	t := s.T()
	storyCh, storyDeliveries := s.bindQueue(messaging.AllStoryEventsKey)
	defer storyCh.Close()
	commentCh, commentDeliveries := s.bindQueue(messaging.AllCommentEventsKey)
	defer commentCh.Close()

	commentID := uuid.New()
	event := models.NewStoryEvent(models.EventCommentAdded, uuid.New(), "carol")
	event.CommentID = &commentID
	require.NoError(t, s.publisher.PublishStoryEvent(context.Background(), event))

	select {
	case d := <-commentDeliveries:
		var got models.StoryEvent
		require.NoError(t, json.Unmarshal(d.Body, &got))
		require.NotNil(t, got.CommentID)
		assert.Equal(t, commentID, *got.CommentID)
	case <-time.After(10 * time.Second):
		t.Fatal("comment event was not delivered")
	}

	select {
	case d := <-storyDeliveries:
		t.Fatalf("unexpected delivery on story key: %s", d.RoutingKey)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestPublisherIntegrationSuite(t *testing.T) {
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

	suite.Run(t, new(PublisherIntegrationSuite))
}
