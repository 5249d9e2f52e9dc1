// Package sizechart holds the footwear size chart and the size resolver.
//
// The chart is a CSV file with one row per brand/size point:
//
//	Brand,UOMO,DONNA,US,USW,UK,EUR,CM
//	Nike,US,USW,9.5,11,8.5,43,27.5
//
// UOMO and DONNA carry the scale in which the brand labels its men's and women's sizes.
// A blank hint means US.
//
// # Resolution
//
// Brands are normalized (lower-cased, trimmed, every run of other characters collapsed
// to an underscore) and indexed, so a lookup only scans the rows of one brand, in file
// order. For each row the resolver picks the scale named by the gender hint, parses that
// cell as a decimal and compares it with the requested size by exact equality. Rows
// whose cell is blank, unparseable or zero are skipped. The first match wins.
//
// # Sources
//
//   - file: a local CSV path (default ./size_chart.csv).
//   - storage: an object in the configured S3/MinIO bucket.
//
// The Service keeps the parsed Table behind an atomic pointer. Reload builds a new
// table and swaps it in; concurrent reloads share one read and a failed reload keeps the
// previous table.
//
// # HTTP Endpoints
//
//   - GET /sizechart/resolve?brand=&gender=&size= : Resolve one size.
//   - POST /sizechart/reload : Re-read the chart.
package sizechart
