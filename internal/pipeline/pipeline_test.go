package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjrivers/mailtrail/internal/model"
)

const sampleCSV = `Date,Campaign,Count,Channels,Tags,Cost
2024-01-05,"Acme, Inc. Spring",1200,"Mail, Email",,"$ 1,030.00 "
2024-01-08,Digital Only,500,"Email, SMS",,
2024-01-10,Tagged Out,300,Mail,NoMail,
bad date,Broken,100,,,
`

func TestRunFullPass(t *testing.T) {
	loadedAt := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	snap, err := Run(sampleCSV, loadedAt)
	require.NoError(t, err)

	assert.Equal(t, loadedAt, snap.LoadedAt)
	assert.Equal(t, 1, snap.Dropped)
	require.Len(t, snap.Records, 3)

	// quoted campaign name with embedded comma survives parsing
	assert.Equal(t, "Acme, Inc. Spring", snap.Records[0].Campaign)
	require.NotNil(t, snap.Records[0].Cost)
	assert.InDelta(t, 1030.0, *snap.Records[0].Cost, 0.001)

	// mail record: 3 tasks; two no-mail records: 2 each
	assert.Len(t, snap.Tasks, 7)

	mailTasks := 0
	for _, task := range snap.Tasks {
		if task.Type == model.TaskMail {
			mailTasks++
		}
	}
	assert.Equal(t, 1, mailTasks)
}

func TestRunEmptyInput(t *testing.T) {
	_, err := Run("", time.Now())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRunIdempotent(t *testing.T) {
	at := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	a, err := Run(sampleCSV, at)
	require.NoError(t, err)
	b, err := Run(sampleCSV, at)
	require.NoError(t, err)
	assert.Equal(t, a.Records, b.Records)
	require.Equal(t, len(a.Tasks), len(b.Tasks))
	for i := range a.Tasks {
		assert.Equal(t, a.Tasks[i].Date, b.Tasks[i].Date)
		assert.Equal(t, a.Tasks[i].Type, b.Tasks[i].Type)
		assert.Equal(t, a.Tasks[i].Campaign, b.Tasks[i].Campaign)
	}
}
