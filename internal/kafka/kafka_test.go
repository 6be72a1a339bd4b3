package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewBookingEvent(t *testing.T) {
	event := NewBookingEvent(EventBookingCreated, 10, 3, 7)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.Equal(t, int64(10), event.BookingID)
	assert.Equal(t, int64(3), event.UserID)
	assert.Equal(t, int64(7), event.RoomID)
	assert.False(t, event.OccurredAt.IsZero())
	assert.Equal(t, "booking:10", event.Key())

	other := NewBookingEvent(EventBookingCreated, 10, 3, 7)
	assert.NotEqual(t, event.ID, other.ID)
}

// fakeReader hands out queued messages, then returns io.EOF.
type fakeReader struct {
	messages  []kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(_ context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func TestConsumer_Consume(t *testing.T) {
	ctx := context.Background()
	event := NewBookingEvent(EventBookingUpdated, 1, 2, 3)
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	t.Run("decodes, forwards and commits", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{{Offset: 4, Value: payload}}}
		consumer := &Consumer{reader: reader}

		var got []BookingEvent
		err := consumer.Consume(ctx, func(_ context.Context, e BookingEvent) error {
			got = append(got, e)
			return nil
		})

		assert.ErrorIs(t, err, io.EOF)
		assert.Len(t, got, 1)
		assert.Equal(t, event.ID, got[0].ID)
		assert.Equal(t, EventBookingUpdated, got[0].Type)
		assert.Equal(t, int64(3), got[0].RoomID)
		assert.Equal(t, []int64{4}, reader.committed)
	})

	t.Run("skips garbage", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{
			{Offset: 1, Value: []byte("{not json")},
			{Offset: 2, Value: payload},
		}}
		consumer := &Consumer{reader: reader}

		calls := 0
		err := consumer.Consume(ctx, func(_ context.Context, _ BookingEvent) error {
			calls++
			return nil
		})

		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, 1, calls)
		assert.Equal(t, []int64{1, 2}, reader.committed)
	})

	t.Run("stops without commit on handler error", func(t *testing.T) {
		reader := &fakeReader{messages: []kafka.Message{{Offset: 7, Value: payload}, {Offset: 8, Value: payload}}}
		consumer := &Consumer{reader: reader}

		expectedErr := errors.New("smtp down")
		err := consumer.Consume(ctx, func(_ context.Context, _ BookingEvent) error {
			return expectedErr
		})

		assert.Equal(t, expectedErr, err)
		assert.Empty(t, reader.committed)
		assert.Len(t, reader.messages, 1)
	})
}

func TestConsumer_Close(t *testing.T) {
	reader := &fakeReader{}
	assert.NoError(t, (&Consumer{reader: reader}).Close())
	assert.True(t, reader.closed)

	var nilConsumer *Consumer
	assert.NoError(t, nilConsumer.Close())
}

func TestProducer_CheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil)
	assert.Error(t, p.CheckConnection(context.Background()))
	assert.NoError(t, p.Close())
}
