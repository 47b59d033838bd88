// Package rules holds the link rules that decide whether two connectors may
// join, and the ordered [Set] they are registered in.
//
// # Mandatory and Advisory Rules
//
// Every [Rule] is either mandatory or advisory. [Evaluate] combines them:
//
//   - any mandatory rule that rejects vetoes the pair
//   - otherwise the pair is admissible iff at least one advisory rule accepts
//
// A set with no advisory rules therefore admits nothing. Rule sets in the
// wild are written against this behavior; keep it.
//
// # Registration Order
//
// [Set.Add] appends. Re-adding a rule already present moves it to the end
// instead of duplicating it. Order only matters for which mandatory veto is
// hit first; the decision itself does not depend on it.
//
// # Built-in Rules
//
//   - [TypeMatch]: connector type tags must agree ([AnyType] matches anything)
//   - [ShapeMatch]: plug meets socket, before meets after
//   - [GenusFilter]: vetoes blocks of listed genera, tracked via workspace events
//   - [Always], [Never], [Func]: simple building blocks
package rules
