package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/catalog"
	"cosmo_stats_backend/internals/features/surveys/frequency/model"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Section{
		{
			Key:   constants.SectionCommunication,
			Title: "COMUNICACIÓN",
			Items: []catalog.Item{
				{DisplayText: "d1", Questions: map[constants.Role]string{
					constants.RoleTeacher: "t1", constants.RoleStudent: "s1", constants.RoleGuardian: "g1",
				}},
				{DisplayText: "d2", Questions: map[constants.Role]string{
					constants.RoleTeacher: "t2", constants.RoleStudent: "s2", constants.RoleGuardian: "NA",
				}},
			},
		},
		{
			Key:   constants.SectionClimate,
			Title: "CONVIVENCIA",
			Items: []catalog.Item{
				{DisplayText: "d3", Questions: map[constants.Role]string{
					constants.RoleTeacher: "t3", constants.RoleStudent: "s3",
				}},
			},
		},
	})
	require.NoError(t, err)
	return c
}

// cellFunc lets a test decide the result of each cell.
type cellFunc func(role constants.Role, question string, section constants.SectionKey, school string) model.FrequencyResult

func (f cellFunc) ComputeFrequency(_ context.Context, role constants.Role, question string, section constants.SectionKey, school string) model.FrequencyResult {
	return f(role, question, section, school)
}

func TestAssemblerKeepsCatalogShape(t *testing.T) {
	cells := cellFunc(func(role constants.Role, question string, _ constants.SectionKey, _ string) model.FrequencyResult {
		if question == constants.NotApplicable {
			return model.Sentinel(model.OutcomeNotApplicable)
		}
		return ok(len(question)*10, 0, 100-len(question)*10)
	})

	report := NewAssembler(smallCatalog(t), cells, 4, nil).Build(context.Background(), "IE Uno")

	assert.Equal(t, "IE Uno", report.School)
	require.Len(t, report.Sections, 2)
	assert.Equal(t, constants.SectionCommunication, report.Sections[0].Key)
	require.Len(t, report.Sections[0].Items, 2)
	assert.Equal(t, "d2", report.Sections[0].Items[1].DisplayText)
	assert.Equal(t, "t2", report.Sections[0].Items[1].Questions[constants.RoleTeacher])
	assert.Equal(t, model.OutcomeNotApplicable, report.Sections[0].Items[1].Results[constants.RoleGuardian].Status)

	// missing role in the catalog is reported as NA
	item := report.Sections[1].Items[0]
	assert.Equal(t, constants.NotApplicable, item.Questions[constants.RoleGuardian])
	assert.True(t, item.Results[constants.RoleGuardian].IsSentinel())
	for _, role := range constants.AllRoles {
		_, present := item.Results[role]
		assert.True(t, present, role)
	}
}

func TestAssemblerPassesSchoolAndSection(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]constants.SectionKey{}
	cells := cellFunc(func(_ constants.Role, question string, section constants.SectionKey, school string) model.FrequencyResult {
		assert.Equal(t, "IE Dos", school)
		mu.Lock()
		seen[question] = section
		mu.Unlock()
		return ok(100, 0, 0)
	})

	NewAssembler(smallCatalog(t), cells, 2, nil).Build(context.Background(), "IE Dos")

	assert.Equal(t, constants.SectionCommunication, seen["t1"])
	assert.Equal(t, constants.SectionCommunication, seen["g1"])
	assert.Equal(t, constants.SectionClimate, seen["s3"])
}

func TestAssemblerRespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak int32
	cells := cellFunc(func(constants.Role, string, constants.SectionKey, string) model.FrequencyResult {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return ok(100, 0, 0)
	})

	NewAssembler(smallCatalog(t), cells, 2, nil).Build(context.Background(), "")

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestAssemblerParallelMatchesSequential(t *testing.T) {
	store := &mockStore{}
	store.On("CountAnswers", mock.Anything, mock.Anything).Return([]submissions.AnswerCount{
		{Rating: "Siempre", Count: 3},
		{Rating: "A veces", Count: 2},
		{Rating: "Nunca", Count: 1},
	}, nil)
	agg := NewAggregator(store, nil)
	c := smallCatalog(t)

	seq := NewAssembler(c, agg, 1, nil).Build(context.Background(), "IE")
	par := NewAssembler(c, agg, 16, nil).Build(context.Background(), "IE")

	assert.Equal(t, seq.Sections, par.Sections)
}

func TestAssemblerEmptySchoolYieldsAllSentinels(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	store := &mockStore{}
	store.On("CountAnswers", mock.Anything, mock.Anything).Return([]submissions.AnswerCount{}, nil)

	report := NewAssembler(c, NewAggregator(store, nil), 8, nil).Build(context.Background(), "IE Sin Datos")

	var leaves int
	for _, sec := range report.Sections {
		for _, it := range sec.Items {
			for _, role := range constants.AllRoles {
				leaves++
				assert.True(t, it.Results[role].IsSentinel())
			}
		}
	}
	assert.Equal(t, c.Cells(), leaves)
	// the three "NA" cells of the default catalog never reach the store
	store.AssertNumberOfCalls(t, "CountAnswers", c.Cells()-3)
}
