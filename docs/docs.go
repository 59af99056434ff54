// Package docs contiene la especificación OpenAPI de la API del dashboard.
// rfmctl docs la escribe en docs/swagger.json, que el servidor publica en /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "status=ok con el dataset cargado; status=degraded (503) si aún no hay snapshot.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Estado del servicio",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    }
                }
            }
        },
        "/api/sidebar": {
            "get": {
                "description": "Métricas sobre el dataset completo (no dependen del filtro) y el estado del multiselect.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "segmentation"
                ],
                "summary": "Totales globales y opciones del filtro",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Segmentos seleccionados (repetible)",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1 = selección explícita (permite selección vacía)",
                        "name": "sel",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SidebarDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/overview": {
            "get": {
                "description": "KPIs, ingresos y clientes por segmento e histogramas RFM del subconjunto filtrado.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "segmentation"
                ],
                "summary": "Vista general de la segmentación",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Segmentos seleccionados (repetible)",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1 = selección explícita (permite selección vacía)",
                        "name": "sel",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.OverviewDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/segments/{name}": {
            "get": {
                "description": "Promedios, estadística descriptiva, top 10 por gasto y dispersión RFM del segmento dentro del filtro.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "segmentation"
                ],
                "summary": "Análisis detallado de un segmento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Nombre del segmento, ej. VIP Champions",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Segmentos seleccionados (repetible)",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1 = selección explícita (permite selección vacía)",
                        "name": "sel",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SegmentAnalysisDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/insights": {
            "get": {
                "description": "Tarjetas por segmento, concentración VIP, riesgo de abandono y tabla comparativa. Siempre sobre el dataset completo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "segmentation"
                ],
                "summary": "Hallazgos y recomendaciones",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InsightsDTO"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/insights/narrative": {
            "post": {
                "description": "Envía la tabla comparativa al proveedor configurado (AI_PROVIDER). 503 si no hay API key.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "segmentation"
                ],
                "summary": "Resumen ejecutivo de los insights (IA)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.NarrativeDTO"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "504": {
                        "description": "Gateway Timeout",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/explorer": {
            "get": {
                "description": "Una serie por segmento con (Recency, Frequency, log1p(Monetary)) y texto de hover.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "segmentation"
                ],
                "summary": "Nube 3D de clientes",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Segmentos seleccionados (repetible)",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1 = selección explícita (permite selección vacía)",
                        "name": "sel",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ExplorerDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/exports/comparison.pdf": {
            "get": {
                "description": "KPIs, gráfico de ingresos por segmento, tabla comparativa y estrategias. Dataset completo.",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "Reporte PDF de la comparación de segmentos",
                "parameters": [
                    {
                        "type": "string",
                        "description": "JWT para enlaces de descarga",
                        "name": "access_token",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/exports/customers.xlsx": {
            "get": {
                "description": "Hojas Customers (filas filtradas) y Comparison (tabla comparativa del mismo filtro).",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "Libro XLSX de clientes filtrados",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Segmentos seleccionados (repetible)",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1 = selección explícita (permite selección vacía)",
                        "name": "sel",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "JWT para enlaces de descarga",
                        "name": "access_token",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/exports/customers.csv": {
            "get": {
                "description": "Mismas columnas que el archivo de entrada más SegmentName.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "exports"
                ],
                "summary": "CSV de clientes filtrados",
                "parameters": [
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Segmentos seleccionados (repetible)",
                        "name": "segment",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1 = selección explícita (permite selección vacía)",
                        "name": "sel",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "JWT para enlaces de descarga",
                        "name": "access_token",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/api/dataset/reload": {
            "post": {
                "description": "Si la lectura falla se conserva el snapshot anterior. Requiere rol analyst.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Recarga el dataset desde la fuente",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.DatasetInfoDTO"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.DatasetInfoDTO": {
            "type": "object",
            "properties": {
                "source": {
                    "type": "string"
                },
                "rows": {
                    "type": "integer"
                },
                "loaded_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "service": {
                    "type": "string"
                },
                "dataset": {
                    "$ref": "#/definitions/dto.DatasetInfoDTO"
                }
            }
        },
        "dto.SegmentOptionDTO": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "selected": {
                    "type": "boolean"
                }
            }
        },
        "dto.SidebarDTO": {
            "type": "object",
            "properties": {
                "total_customers": {
                    "type": "integer"
                },
                "total_revenue": {
                    "type": "string",
                    "example": "1234.56"
                },
                "avg_customer_value": {
                    "type": "string",
                    "example": "1234.56"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SegmentOptionDTO"
                    }
                },
                "dataset": {
                    "$ref": "#/definitions/dto.DatasetInfoDTO"
                }
            }
        },
        "dto.SegmentValueDTO": {
            "type": "object",
            "properties": {
                "segment": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "value": {
                    "type": "string",
                    "example": "1234.56"
                }
            }
        },
        "dto.SegmentCountDTO": {
            "type": "object",
            "properties": {
                "segment": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "stats.Bin": {
            "type": "object",
            "properties": {
                "lower": {
                    "type": "number"
                },
                "upper": {
                    "type": "number"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "dto.HistogramDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "x_label": {
                    "type": "string"
                },
                "bins": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.Bin"
                    }
                }
            }
        },
        "dto.OverviewDTO": {
            "type": "object",
            "properties": {
                "selected": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "customer_count": {
                    "type": "integer"
                },
                "segment_count": {
                    "type": "integer"
                },
                "total_revenue": {
                    "type": "string",
                    "example": "1234.56"
                },
                "avg_recency": {
                    "type": "number",
                    "x-nullable": true
                },
                "revenue_by_segment": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SegmentValueDTO"
                    }
                },
                "distribution": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SegmentCountDTO"
                    }
                },
                "recency_histogram": {
                    "$ref": "#/definitions/dto.HistogramDTO"
                },
                "frequency_histogram": {
                    "$ref": "#/definitions/dto.HistogramDTO"
                },
                "monetary_histogram": {
                    "$ref": "#/definitions/dto.HistogramDTO"
                }
            }
        },
        "dto.MetricStatsDTO": {
            "type": "object",
            "properties": {
                "metric": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "mean": {
                    "type": "number",
                    "x-nullable": true
                },
                "std": {
                    "type": "number",
                    "x-nullable": true
                },
                "min": {
                    "type": "number",
                    "x-nullable": true
                },
                "p25": {
                    "type": "number",
                    "x-nullable": true
                },
                "p50": {
                    "type": "number",
                    "x-nullable": true
                },
                "p75": {
                    "type": "number",
                    "x-nullable": true
                },
                "max": {
                    "type": "number",
                    "x-nullable": true
                }
            }
        },
        "dto.CustomerDTO": {
            "type": "object",
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "recency": {
                    "type": "integer"
                },
                "frequency": {
                    "type": "integer"
                },
                "monetary": {
                    "type": "string",
                    "example": "1234.56"
                }
            }
        },
        "dto.ScatterPointDTO": {
            "type": "object",
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                },
                "color": {
                    "type": "number"
                },
                "size": {
                    "type": "number"
                }
            }
        },
        "dto.ScatterDTO": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "x_label": {
                    "type": "string"
                },
                "y_label": {
                    "type": "string"
                },
                "color_label": {
                    "type": "string"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ScatterPointDTO"
                    }
                }
            }
        },
        "dto.SegmentAnalysisDTO": {
            "type": "object",
            "properties": {
                "focus": {
                    "type": "string"
                },
                "selected": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "customers": {
                    "type": "integer"
                },
                "avg_recency": {
                    "type": "number",
                    "x-nullable": true
                },
                "avg_frequency": {
                    "type": "number",
                    "x-nullable": true
                },
                "avg_monetary": {
                    "type": "number",
                    "x-nullable": true
                },
                "stats": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MetricStatsDTO"
                    }
                },
                "top_customers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CustomerDTO"
                    }
                },
                "recency_vs_monetary": {
                    "$ref": "#/definitions/dto.ScatterDTO"
                },
                "frequency_vs_monetary": {
                    "$ref": "#/definitions/dto.ScatterDTO"
                }
            }
        },
        "dto.SegmentFindingDTO": {
            "type": "object",
            "properties": {
                "segment": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "customers": {
                    "type": "integer"
                },
                "customer_pct": {
                    "type": "number"
                },
                "revenue": {
                    "type": "string",
                    "example": "1234.56"
                },
                "revenue_pct": {
                    "type": "number"
                },
                "headline_metric": {
                    "type": "string",
                    "enum": [
                        "recency",
                        "frequency",
                        "monetary"
                    ]
                },
                "headline_value": {
                    "type": "number",
                    "x-nullable": true
                },
                "strategy": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.ConcentrationDTO": {
            "type": "object",
            "properties": {
                "vip_customers": {
                    "type": "integer"
                },
                "vip_customer_pct": {
                    "type": "number"
                },
                "vip_revenue": {
                    "type": "string",
                    "example": "1234.56"
                },
                "vip_revenue_pct": {
                    "type": "number"
                },
                "regular_equivalent": {
                    "type": "integer"
                }
            }
        },
        "dto.ChurnRiskDTO": {
            "type": "object",
            "properties": {
                "threshold_days": {
                    "type": "integer"
                },
                "dormant_customers": {
                    "type": "integer"
                },
                "dormant_pct": {
                    "type": "number"
                },
                "win_back_revenue": {
                    "type": "string",
                    "example": "1234.56"
                }
            }
        },
        "dto.ComparisonRowDTO": {
            "type": "object",
            "properties": {
                "segment": {
                    "type": "string"
                },
                "customer_count": {
                    "type": "integer"
                },
                "avg_recency": {
                    "type": "number"
                },
                "avg_frequency": {
                    "type": "number"
                },
                "avg_monetary": {
                    "type": "number"
                },
                "total_revenue": {
                    "type": "string",
                    "example": "1234.56"
                },
                "revenue_pct": {
                    "type": "number"
                }
            }
        },
        "dto.InsightsDTO": {
            "type": "object",
            "properties": {
                "total_customers": {
                    "type": "integer"
                },
                "total_revenue": {
                    "type": "string",
                    "example": "1234.56"
                },
                "findings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SegmentFindingDTO"
                    }
                },
                "concentration": {
                    "$ref": "#/definitions/dto.ConcentrationDTO"
                },
                "churn_risk": {
                    "$ref": "#/definitions/dto.ChurnRiskDTO"
                },
                "comparison": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ComparisonRowDTO"
                    }
                }
            }
        },
        "dto.NarrativeDTO": {
            "type": "object",
            "properties": {
                "summary": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "generated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.Point3DDTO": {
            "type": "object",
            "properties": {
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                },
                "z": {
                    "type": "number"
                },
                "hover": {
                    "type": "string"
                }
            }
        },
        "dto.Series3DDTO": {
            "type": "object",
            "properties": {
                "segment": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.Point3DDTO"
                    }
                }
            }
        },
        "dto.ExplorerDTO": {
            "type": "object",
            "properties": {
                "selected": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "x_title": {
                    "type": "string"
                },
                "y_title": {
                    "type": "string"
                },
                "z_title": {
                    "type": "string"
                },
                "camera_eye": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "series": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.Series3DDTO"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Bearer <token> (rfmctl token)",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo metadatos de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RFM Dashboard API",
	Description:      "Dashboard de segmentación RFM: vistas del dashboard como JSON, exportaciones y recarga del dataset.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
