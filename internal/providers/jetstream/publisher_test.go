package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/mocks"
	"github.com/hoopsledger/pickboard/internal/providers/jetstream"
)

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "pickboard-test",
	}
}

// connect expects a successful connection and stream setup with the default names
func (tm *testPublisherMocks) connect(t *testing.T) {
	tm.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), natsjs.StreamConfig{
			Name:     domain.AUDIT_STREAM_NAME,
			Subjects: []string{domain.AUDIT_SUBJECT_PREFIX + ".>"},
		}).
		Return(nil)
}

func TestNewPublisher_ConnectError(t *testing.T) {
	tm := setupTestPublisher(t)

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	assert.Nil(t, pub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no servers available")
}

func TestNewPublisher_StreamErrorClosesConnection(t *testing.T) {
	tm := setupTestPublisher(t)

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.conn, tm.js, nil)
	tm.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
	tm.conn.EXPECT().Close()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	assert.Nil(t, pub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.AUDIT_STREAM_NAME)
}

func TestPublishAuditReport(t *testing.T) {
	tests := []struct {
		name        string
		report      *domain.AuditReport
		wantSubject string
	}{
		{
			name:        "explicit findings status",
			report:      &domain.AuditReport{RunID: "01J0000000000000000000000A", Status: domain.AuditStatusFindings, CoverageGaps: []string{"NYK-2028-2"}},
			wantSubject: "pickboard.audit.findings",
		},
		{
			name:        "status derived when unset",
			report:      &domain.AuditReport{RunID: "01J0000000000000000000000B"},
			wantSubject: "pickboard.audit.clean",
		},
		{
			name:        "derived findings",
			report:      &domain.AuditReport{RunID: "01J0000000000000000000000C", MissingEndnoteRefs: []int64{9}},
			wantSubject: "pickboard.audit.findings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestPublisher(t)
			tm.connect(t)

			pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
			require.NoError(t, err)

			tm.json.EXPECT().Marshal(tt.report).DoAndReturn(json.Marshal)
			tm.js.EXPECT().
				Publish(gomock.Any(), tt.wantSubject, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
					var decoded domain.AuditReport
					require.NoError(t, json.Unmarshal(data, &decoded))
					assert.Equal(t, tt.report.RunID, decoded.RunID)
					return &natsjs.PubAck{Stream: domain.AUDIT_STREAM_NAME, Sequence: 1}, nil
				})

			assert.NoError(t, pub.PublishAuditReport(context.Background(), tt.report))
		})
	}
}

func TestPublishAuditReport_Errors(t *testing.T) {
	tm := setupTestPublisher(t)
	tm.connect(t)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.NoError(t, err)

	assert.Error(t, pub.PublishAuditReport(context.Background(), nil))

	report := &domain.AuditReport{RunID: "01J0000000000000000000000D"}

	tm.json.EXPECT().Marshal(report).Return(nil, errors.New("unsupported value"))
	err = pub.PublishAuditReport(context.Background(), report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal audit report")

	tm.json.EXPECT().Marshal(report).Return([]byte(`{}`), nil)
	tm.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	err = pub.PublishAuditReport(context.Background(), report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish audit report")
}

func TestClose(t *testing.T) {
	tm := setupTestPublisher(t)
	tm.connect(t)

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, tm.json)
	require.NoError(t, err)

	tm.conn.EXPECT().Close()
	pub.Close()
}
