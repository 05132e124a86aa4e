package events

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/streadway/amqp"

	"resume-insight/internal/shared/telemetry"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sqs.SendMessageOutput{}, f.err
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	closed   bool
}

func (f *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func sampleEvent() Event {
	return Event{
		Type:       AnalysisCompleted,
		SessionID:  "s-1",
		UserID:     "guest:abc",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Payload:    map[string]any{"score": 77},
	}
}

func TestEncodeDecodeSetsVersion(t *testing.T) {
	raw, err := Encode(sampleEvent())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Version != currentVersion || got.Type != AnalysisCompleted || got.SessionID != "s-1" {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestSQSPublisher(t *testing.T) {
	fake := &fakeSQS{}
	p := NewSQSPublisherWithClient(fake, "https://sqs.example/queue")

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("expected one message, got %d", len(fake.inputs))
	}
	in := fake.inputs[0]
	if aws.ToString(in.QueueUrl) != "https://sqs.example/queue" {
		t.Fatalf("unexpected queue url %s", aws.ToString(in.QueueUrl))
	}
	if !strings.Contains(aws.ToString(in.MessageBody), `"type":"analysis.completed"`) {
		t.Fatalf("unexpected body %s", aws.ToString(in.MessageBody))
	}
	if aws.ToString(in.MessageAttributes["type"].StringValue) != "analysis.completed" {
		t.Fatalf("missing type attribute")
	}
}

func TestAMQPPublisherRoutingKey(t *testing.T) {
	ch := &fakeChannel{}
	p := NewAMQPPublisherWithChannel("resume_events", func() (AMQPChannel, error) { return ch, nil })

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if ch.exchange != "resume_events" || ch.key != "analysis.completed.s-1" {
		t.Fatalf("unexpected exchange/key %s %s", ch.exchange, ch.key)
	}
	if ch.msg.ContentType != "application/json" || !ch.closed {
		t.Fatalf("unexpected publishing %+v closed=%v", ch.msg, ch.closed)
	}
	if RoutingKey(Event{Type: SessionCreated}) != "session.created" {
		t.Fatalf("unexpected routing key without session")
	}
}

func TestMultiJoinsErrors(t *testing.T) {
	failing := &fakeSQS{err: errors.New("down")}
	ok := &fakeSQS{}
	m := Multi{NewSQSPublisherWithClient(failing, "q1"), NewSQSPublisherWithClient(ok, "q2")}

	err := m.Publish(context.Background(), sampleEvent())
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if len(ok.inputs) != 1 {
		t.Fatalf("expected second publisher to still receive the event")
	}
}

func TestEmitLogsFailuresWithoutReturning(t *testing.T) {
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	Emit(context.Background(), NewSQSPublisherWithClient(&fakeSQS{err: errors.New("down")}, "q"), sampleEvent())
	Emit(context.Background(), nil, sampleEvent())
	Emit(context.Background(), NoopPublisher{}, sampleEvent())

	if !strings.Contains(buf.String(), "events.publish_failed") {
		t.Fatalf("expected failure log, got %s", buf.String())
	}
}
