package assistant

import "github.com/pasvio/vitrina/core"

// AskMonitor provides hooks to observe the answering process.
// Implement this interface to track intermediate steps during Ask.
type AskMonitor interface {
	Start(productID core.ID, question string)
	AfterProductLoad(product *core.Product)
	AfterFAQLoad(entries []*core.FAQEntry)
	ExternalAnswer(answer string)
	ExternalDegraded(answer string)
	ExternalError(err error)
	LocalAnswer(answer string)
	Finish(answer string)
}

// noopMonitor is a no-op implementation of AskMonitor
type noopMonitor struct{}

var _ AskMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.ID, _ string)          {}
func (n *noopMonitor) AfterProductLoad(_ *core.Product)   {}
func (n *noopMonitor) AfterFAQLoad(_ []*core.FAQEntry)    {}
func (n *noopMonitor) ExternalAnswer(_ string)            {}
func (n *noopMonitor) ExternalDegraded(_ string)          {}
func (n *noopMonitor) ExternalError(_ error)              {}
func (n *noopMonitor) LocalAnswer(_ string)               {}
func (n *noopMonitor) Finish(_ string)                    {}
