package match

import "github.com/poiesic/talentscout/core"

// MatchMonitor provides hooks to observe the matching process.
// Implement this interface to track intermediate steps and results during a match.
type MatchMonitor interface {
	Start(query string)
	AfterQueryEmbedding(vector []float32)
	AfterQueryEntityExtraction(entities []string)
	AfterRetrieval(hits []*core.RetrievalHit)
	CandidateScored(result *core.MatchResult)
	CandidateSkipped(candidateID string, err error)
	Finish(results []*core.MatchResult)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterQueryEmbedding(_ []float32)       {}
func (n *noopMonitor) AfterQueryEntityExtraction(_ []string) {}
func (n *noopMonitor) AfterRetrieval(_ []*core.RetrievalHit) {}
func (n *noopMonitor) CandidateScored(_ *core.MatchResult)   {}
func (n *noopMonitor) CandidateSkipped(_ string, _ error)    {}
func (n *noopMonitor) Finish(_ []*core.MatchResult)          {}
