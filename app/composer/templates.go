package composer

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// The plain-text body is a fixed-structure report used as the fallback for
// clients that skip the HTML part. The message is embedded verbatim.
var textTemplate = texttemplate.Must(texttemplate.New("text").Parse(`═══════════════════════════════════════
NUEVA CONSULTA - AURA PLATFORM
═══════════════════════════════════════

ORIGEN: Formulario de Contacto Web
SITIO: AURA - Reconexión Humana
FECHA: {{.Date}}

───────────────────────────────────────
DATOS DEL CONTACTO
───────────────────────────────────────
• Nombre Completo: {{.Name}}
• Email de Contacto: {{.Email}}
• Organización: {{.Company}}
• Teléfono: {{.Phone}}

───────────────────────────────────────
INFORMACIÓN DE LA CONSULTA
───────────────────────────────────────
• Tipo de Consulta: {{.CategoryLabel}}
• Nivel de Prioridad: {{.UrgencyLabel}}
• Estado: Nueva consulta pendiente de respuesta

───────────────────────────────────────
MENSAJE COMPLETO
───────────────────────────────────────
{{.Message}}

═══════════════════════════════════════
SISTEMA AUTOMÁTICO AURA v2.0
═══════════════════════════════════════
Este email fue generado automáticamente desde
el formulario de contacto de AURA Platform.

Para responder, utiliza directamente el email:
{{.Email}}
`))

// The HTML body is a self-contained document. All user-supplied fields pass
// through html/template's contextual escaping before being embedded.
var htmlTemplate = htmltemplate.Must(htmltemplate.New("html").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
      line-height: 1.6;
      color: #2c3e50;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      padding: 20px 0;
    }
    .email-container {
      max-width: 680px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 16px;
      overflow: hidden;
      box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
    }
    .header {
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      padding: 50px 40px;
      text-align: center;
    }
    .logo {
      width: 140px;
      height: 140px;
      border-radius: 50%;
      background: #ffffff;
      display: inline-flex;
      align-items: center;
      justify-content: center;
      flex-direction: column;
      padding: 20px;
      border: 4px solid rgba(255, 255, 255, 0.3);
      margin: 0 auto 25px;
    }
    .logo-text {
      font-size: 11px;
      font-weight: 700;
      color: #667eea;
      letter-spacing: 1.5px;
      text-transform: uppercase;
      margin-bottom: 5px;
    }
    .logo-brand {
      font-size: 28px;
      font-weight: 900;
      color: #667eea;
      letter-spacing: 2px;
    }
    .header-title {
      color: #ffffff;
      font-size: 32px;
      font-weight: 800;
      margin: 20px 0 10px 0;
    }
    .header-subtitle {
      color: rgba(255, 255, 255, 0.95);
      font-size: 16px;
      letter-spacing: 2px;
      text-transform: uppercase;
    }
    .alert-badge {
      display: inline-block;
      background: rgba(255, 255, 255, 0.2);
      padding: 12px 28px;
      border-radius: 30px;
      margin-top: 20px;
      border: 2px solid rgba(255, 255, 255, 0.3);
      color: #ffffff;
      font-weight: 600;
      font-size: 14px;
      letter-spacing: 1px;
    }
    .content { padding: 45px 40px; }
    .section {
      margin-bottom: 40px;
      background: #f8f9fa;
      padding: 30px;
      border-radius: 12px;
      border-left: 5px solid #667eea;
    }
    .section-title {
      color: #2c3e50;
      font-size: 20px;
      font-weight: 700;
      margin-bottom: 25px;
      padding-bottom: 15px;
      border-bottom: 2px solid #e0e0e0;
    }
    .info-grid { display: table; width: 100%; border-collapse: separate; border-spacing: 0 15px; }
    .info-row { display: table-row; }
    .info-label {
      display: table-cell;
      font-weight: 600;
      color: #555;
      padding-right: 25px;
      width: 160px;
      vertical-align: top;
    }
    .info-value { display: table-cell; color: #2c3e50; font-weight: 500; vertical-align: top; }
    .info-value a { color: #667eea; text-decoration: none; font-weight: 600; }
    .urgency-badge {
      display: inline-block;
      padding: 10px 20px;
      border-radius: 25px;
      font-weight: 700;
      font-size: 13px;
      letter-spacing: 0.5px;
      text-transform: uppercase;
    }
    .urgency-low { background: linear-gradient(135deg, #d4edda 0%, #c3e6cb 100%); color: #155724; }
    .urgency-medium { background: linear-gradient(135deg, #fff3cd 0%, #ffeaa7 100%); color: #856404; }
    .urgency-high { background: linear-gradient(135deg, #f8d7da 0%, #f5c6cb 100%); color: #721c24; }
    .urgency-critical { background: linear-gradient(135deg, #dc3545 0%, #c82333 100%); color: #ffffff; }
    .category-badge {
      display: inline-block;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: #ffffff;
      padding: 8px 16px;
      border-radius: 20px;
      font-size: 13px;
      font-weight: 600;
    }
    .message-container {
      background: #ffffff;
      padding: 30px;
      border-radius: 10px;
      border: 2px solid #e0e0e0;
      margin-top: 20px;
    }
    .message-text {
      color: #2c3e50;
      line-height: 1.8;
      white-space: pre-wrap;
      word-wrap: break-word;
      font-size: 15px;
    }
    .footer {
      background: linear-gradient(135deg, #2c3e50 0%, #34495e 100%);
      padding: 40px;
      text-align: center;
      color: #ecf0f1;
    }
    .footer-title { font-size: 16px; font-weight: 700; color: #ffffff; margin-bottom: 15px; }
    .footer-text { font-size: 13px; line-height: 1.8; color: #bdc3c7; margin: 10px 0; }
    .footer-email { color: #667eea; font-weight: 600; text-decoration: none; }
    .footer-copyright {
      font-size: 11px;
      color: #95a5a6;
      margin-top: 25px;
      padding-top: 20px;
      border-top: 1px solid rgba(255, 255, 255, 0.1);
    }
  </style>
</head>
<body>
  <div class="email-container">
    <div class="header">
      <div class="logo">
        <div class="logo-text">Innovación</div>
        <div class="logo-brand">W.E.L.</div>
      </div>
      <h1 class="header-title">NUEVA CONSULTA RECIBIDA</h1>
      <p class="header-subtitle">AURA Platform</p>
      <div class="alert-badge">SISTEMA DE RECONEXIÓN HUMANA</div>
    </div>
    <div class="content">
      <div class="section">
        <h2 class="section-title">Información del Contacto</h2>
        <div class="info-grid">
          <div class="info-row">
            <div class="info-label">Nombre Completo:</div>
            <div class="info-value"><strong>{{.Name}}</strong></div>
          </div>
          <div class="info-row">
            <div class="info-label">Correo Electrónico:</div>
            <div class="info-value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
          </div>
          <div class="info-row">
            <div class="info-label">Organización:</div>
            <div class="info-value"><strong>{{.Company}}</strong></div>
          </div>
          <div class="info-row">
            <div class="info-label">Teléfono:</div>
            <div class="info-value">{{.Phone}}</div>
          </div>
          <div class="info-row">
            <div class="info-label">Fecha de Envío:</div>
            <div class="info-value">{{.Date}}</div>
          </div>
        </div>
      </div>
      <div class="section">
        <h2 class="section-title">Detalles de la Consulta</h2>
        <div class="info-grid">
          <div class="info-row">
            <div class="info-label">Tipo de Consulta:</div>
            <div class="info-value"><span class="category-badge">{{.CategoryLabel}}</span></div>
          </div>
          <div class="info-row">
            <div class="info-label">Nivel de Urgencia:</div>
            <div class="info-value"><span class="urgency-badge {{.UrgencyClass}}">{{.UrgencyLabel}}</span></div>
          </div>
        </div>
      </div>
      <div class="section">
        <h2 class="section-title">Mensaje del Usuario</h2>
        <div class="message-container">
          <div class="message-text">{{.Message}}</div>
        </div>
      </div>
    </div>
    <div class="footer">
      <div class="footer-title">SISTEMA AUTOMÁTICO AURA v2.0</div>
      <p class="footer-text">
        Este correo fue generado automáticamente desde el<br/>
        formulario de contacto de AURA Platform
      </p>
      <p class="footer-text">
        Para responder a esta consulta, contacta directamente a:<br/>
        <a href="mailto:{{.Email}}" class="footer-email">{{.Email}}</a>
      </p>
      <p class="footer-copyright">
        © 2025 AURA Platform - Sistema de Reconexión Humana<br/>
        Todos los derechos reservados
      </p>
    </div>
  </div>
</body>
</html>
`))
