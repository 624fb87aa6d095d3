// Package firefield derives a per-cell fire-intensity snapshot from seed
// locations and a fire stage.
//
// A snapshot is a stateless function of (building, seeds, floor, stage):
//
//  1. Every walkable seed cell on the fire floor starts at intensity 1.0,
//     every other cell at 0.
//  2. Profile.Passes diffusion rounds run over walkable cells:
//     new = (1-rate)·current + rate·mean(walkable neighbours).
//  3. The field is multiplied by Profile.Amplification and clipped to [0,1].
//
// Walls never carry intensity. There is no hidden time-stepped state and no
// randomness: identical inputs always produce an identical Field.
//
// Stages and default profiles:
//
//	stage    rate   amplification  passes  safety threshold
//	initial  0.05   ×1.0           2       0.35
//	growth   0.12   ×1.3           3       0.25
//	spread   0.20   ×1.6           4       0.20
//
// Intensities are stored in a gonum *mat.Dense per snapshot.
//
// Complexity: Build is O(Passes·R·C·8) time, O(R·C) memory.
package firefield
