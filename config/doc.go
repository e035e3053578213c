// Package config loads graph policy and logging settings from YAML.
//
// A Config maps one-to-one onto core.GraphOption values plus a zap logger:
//
//	root: true               # create the 0_root anchor
//	cascade_delete: false    # DeleteNode also removes peer records
//	edge_mutation: mirrored  # mirrored | single
//	strict_edge_ids: false   # reject duplicate derived edge IDs
//	auto_touch: false        # refresh timestamps on graph mutations
//	log:
//	  level: info            # debug | info | warn | error
//	  format: json           # json | console
//
// Unset keys keep the values of Default(), which reproduce core.NewGraph()
// defaults. Unknown keys are rejected.
package config
