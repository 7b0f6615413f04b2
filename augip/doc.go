// Package augip implements the augmentation-IP solver: a layered
// longest-path search over an implicit DAG of residual vectors.
//
// Layers are indexed by (block, col). Each node in a layer is keyed by a
// residual vector of length r+s: the first r coordinates accumulate the
// shared-constraint partial sum across every block processed so far, the
// last s coordinates accumulate the current block's local sum. Only paths
// whose last s coordinates are zero after a block's last column survive to
// the next block (the first r carry forward); the final answer is the path
// (if any) reaching the all-zero key after the last block's last column.
//
// The search is structured as a level-by-level frontier, rebuilt from
// scratch at each column from the previous layer, much like a BFS level
// graph. All search state lives on a dedicated engine struct rather than in
// closures, with deterministic iteration order so output is reproducible
// across runs.
package augip
