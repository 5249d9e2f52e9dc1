// Package metafields synchronizes resolved sizes onto a variant's custom attributes.
//
// Five keys live in the "custom" namespace, all of type single_line_text_field:
// us_size, usw_size, uk_size, eur_size and cm_size.
//
// Synchronization is a plan followed by an apply:
//
//  1. The variant reference (gid://shopify/ProductVariant/<id> or a bare id) is reduced
//     to its numeric id.
//  2. The variant's attributes are read once.
//  3. BuildPlan decides per key: skip_empty when the desired value is empty, create when
//     the key is absent, unchanged when the stored text equals the desired text, update
//     otherwise.
//  4. Creates and updates are issued in key order. A failed write is recorded in the
//     Result and does not stop later keys.
//
// Running the same mapping twice issues no writes the second time. An empty desired
// value never produces a write, even when a stale attribute exists.
package metafields
