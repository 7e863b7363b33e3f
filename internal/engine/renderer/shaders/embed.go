// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for the generated terrain mesh.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader shades terrain by height band and a directional light.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the water plane.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water plane.
//
//go:embed water.frag
var WaterFragmentShader string

// OverlayVertexShader places screen-space quads in pixel coordinates.
//
//go:embed overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader fills overlay quads with a color or a texture.
//
//go:embed overlay.frag
var OverlayFragmentShader string
