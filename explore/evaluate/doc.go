// Package evaluate implements the Evaluator: runs a discretized
// statement sequence against a Host, binding each Assignment exactly
// once and returning whatever the trailing Expression produces. It is
// the terminal stage of the pipeline — Extract -> Generate -> Mutate ->
// Discretize -> Evaluate — where a Value tree finally becomes a real
// host-side artifact instead of data describing one.
package evaluate
