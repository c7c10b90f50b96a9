// Package heuristic provides the cost-to-goal estimators used by the A*
// driver, selected through the closed Kind enumeration.
//
// Estimators:
//
//	manhattan           |dx| + |dy|
//	euclidean           sqrt(dx² + dy²)
//	diagonal            min(|dx|,|dy|)·√2 + ||dx| − |dy||
//	fancy_manhattan     manhattan − 0.5 when a straight roll-out lands 1 on top
//	forecast_manhattan  manhattan + 1 when the state sits in a one-exit corridor
//
// Admissibility:
//
//   - manhattan, euclidean and diagonal never overestimate the number of
//     rolls left, so A* returns shortest paths with them.
//   - fancy_manhattan and forecast_manhattan are inadmissible on purpose:
//     they trade optimality for a smaller search.
//
// All estimators are pure; look-ahead works on copies of the die.
package heuristic
