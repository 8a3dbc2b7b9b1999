// Package orchestration runs the prime counting strategies one after another,
// measures each run and checks that they agree before handing the results to
// a presenter. It decouples the counting core from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
