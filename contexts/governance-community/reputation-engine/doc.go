// Package reputationengine implements the reputation scoreboard inside the
// governance-community context.
//
// The module owns multi-category reputation accounting driven by peer
// endorsement votes: quadratic score dampening, compound inactivity decay,
// participation streaks, bit-set achievement badges, threshold-gated role
// unlocks, and per-pair vote rate limiting. It keeps business rules in
// application/domain layers and isolates infrastructure concerns behind
// ports and adapters.
package reputationengine
