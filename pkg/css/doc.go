// Package css turns token trees into CSS custom properties and stylesheets.
//
// Token paths become dash-cased property names under a prefix:
//
//	css.Flatten("spark", tree.Of("color", tree.Of("textPrimary", "#111")))
//	// --spark-color-text-primary: #111;
//
// Components refer to tokens through var() references produced by References,
// and generated output can be checked with ValidateValue and ValidateStylesheet.
package css
