// file: internals/features/surveys/frequency/model/frequency_model.go
package model

// Outcome says why a FrequencyResult holds the values it holds.
// Every outcome other than OutcomeOK comes with the -1 sentinel.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeNotApplicable Outcome = "not_applicable"
	OutcomeNoData        Outcome = "no_data"
	OutcomeQueryFailure  Outcome = "query_failure"
)

// SentinelValue fills S, A and N when there is nothing to report.
const SentinelValue = -1

// FrequencyResult is the percentage split of one question:
// S = siempre (always), A = algunas veces (sometimes), N = nunca (never).
type FrequencyResult struct {
	S      int     `json:"S"`
	A      int     `json:"A"`
	N      int     `json:"N"`
	Status Outcome `json:"status"`
}

func Sentinel(reason Outcome) FrequencyResult {
	return FrequencyResult{S: SentinelValue, A: SentinelValue, N: SentinelValue, Status: reason}
}

// IsSentinel is true when all three buckets hold -1, whatever Status says.
func (r FrequencyResult) IsSentinel() bool {
	return r.S == SentinelValue && r.A == SentinelValue && r.N == SentinelValue
}

func (r FrequencyResult) Sum() int {
	return r.S + r.A + r.N
}

// Valid reports whether r is either the sentinel or three values in [0,100].
func (r FrequencyResult) Valid() bool {
	if r.IsSentinel() {
		return true
	}
	in := func(v int) bool { return v >= 0 && v <= 100 }
	return in(r.S) && in(r.A) && in(r.N)
}
