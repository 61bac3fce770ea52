package render

// Samplers follow raylib's default names so DrawMesh binds material maps automatically:
// texture0 = MapAlbedo, texture1 = MapMetalness (used as specular), texture2 = MapNormal (used as bump height).
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPos - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(ambient.rgb * colDiffuse.rgb + diffuse + specular, colDiffuse.a);
}
`
	// phongFS perturbs the normal from the bump map's height derivatives (no tangents needed)
	// and scales the specular term by the specular map's red channel.
	phongFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform sampler2D texture1;
uniform sampler2D texture2;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform float bumpScale;
uniform float useBump;
uniform float useSpecular;
out vec4 finalColor;

vec3 perturbNormal(vec3 N) {
  vec3 dpdx = dFdx(fragPosition);
  vec3 dpdy = dFdy(fragPosition);
  float h = texture(texture2, fragTexCoord).r;
  float dhdx = dFdx(h) * bumpScale;
  float dhdy = dFdy(h) * bumpScale;
  vec3 r1 = cross(dpdy, N);
  vec3 r2 = cross(N, dpdx);
  float det = dot(dpdx, r1);
  vec3 grad = sign(det) * (dhdx * r1 + dhdy * r2);
  return normalize(abs(det) * N - grad);
}

void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  if (useBump > 0.5) {
    N = perturbNormal(N);
  }
  vec3 L = normalize(lightPos - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 H = normalize(L + V);
  float strength = specularStrength;
  if (useSpecular > 0.5) {
    strength *= texture(texture1, fragTexCoord).r;
  }
  float spec = pow(max(dot(N, H), 0.0), specularPower) * strength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(ambient.rgb * tint.rgb + diffuse + specular, tint.a);
}
`
)
